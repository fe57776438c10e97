package countries

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/directory/app/api"
	"github.com/joefazee/directory/internal/sanitizer"
	"github.com/joefazee/directory/models"
)

// UploadField is the multipart field carrying the workbook
const UploadField = "excel_file"

// Handler handles HTTP requests for countries
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new country handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
	}
}

// GetAllCountries godoc
// @Summary List all countries
// @Description Get all countries in insertion order
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) GetAllCountries(c *gin.Context) {
	countries, err := h.service.GetAllCountries(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryByID godoc
// @Summary Get country by ID
// @Tags countries
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} api.Response{data=CountryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{id} [get]
func (h *Handler) GetCountryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid country ID format")
		return
	}

	country, err := h.service.GetCountryByID(c.Request.Context(), id)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch country")
		return
	}
	if country == nil {
		api.NotFoundResponse(c, "Country")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", country)
}

// AddCountry godoc
// @Summary Add a country
// @Tags countries
// @Accept json
// @Produce json
// @Param request body CountryAddRequest true "Country to add"
// @Success 201 {object} api.Response{data=CountryResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [post]
func (h *Handler) AddCountry(c *gin.Context) {
	var req CountryAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.Sanitize(h.sanitizer)

	country, err := h.service.AddCountry(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			api.ValidationErrorResponse(c, api.ErrorDetails(err))
			return
		}
		api.InternalErrorResponse(c, "Failed to add country")
		return
	}

	api.CreatedResponse(c, "Country added successfully", country)
}

// UploadCountries godoc
// @Summary Import countries from a spreadsheet
// @Description Reads the first column of the "Countries" sheet, skipping the header row
// @Tags countries
// @Accept multipart/form-data
// @Produce json
// @Param excel_file formData file true "xlsx workbook"
// @Success 200 {object} api.Response{data=UploadResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/upload [post]
func (h *Handler) UploadCountries(c *gin.Context) {
	header, err := c.FormFile(UploadField)
	if err != nil {
		api.BadRequestResponse(c, "Please select an xlsx file")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		api.BadRequestResponse(c, "Unsupported file. 'xlsx' file expected")
		return
	}

	file, err := header.Open()
	if err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	inserted, err := h.service.UploadCountriesFromExcel(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFile) {
			api.BadRequestResponse(c, err.Error())
			return
		}
		api.InternalErrorResponse(c, "Failed to import countries")
		return
	}

	api.SuccessResponse(c, http.StatusOK,
		fmt.Sprintf("%d countries uploaded", inserted),
		UploadResponse{Inserted: inserted})
}

// UploadResponse reports the outcome of a spreadsheet import
type UploadResponse struct {
	Inserted int `json:"inserted"`
}
