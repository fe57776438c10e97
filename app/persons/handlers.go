package persons

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/directory/app/api"
	"github.com/joefazee/directory/internal/logger"
	"github.com/joefazee/directory/internal/sanitizer"
	"github.com/joefazee/directory/models"
)

const (
	csvContentType   = "text/csv"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Handler handles HTTP requests for persons
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewHandler creates a new person handler
func NewHandler(service Service, s sanitizer.HTMLStripperer, log logger.Logger) *Handler {
	return &Handler{
		service:   service,
		sanitizer: s,
		logger:    logger.OrNull(log),
	}
}

// ListMeta echoes the search and sort applied to a person list
type ListMeta struct {
	Count     int    `json:"count"`
	SearchBy  string `json:"search_by,omitempty"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order"`
}

func (h *Handler) writeError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, models.ErrNullArgument):
		api.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrInvalidPersonID):
		api.NotFoundResponse(c, "Person")
	case errors.Is(err, models.ErrInvalidArgument):
		api.ValidationErrorResponse(c, api.ErrorDetails(err))
	default:
		h.logger.Error(err, map[string]interface{}{"action": action})
		api.InternalErrorResponse(c, "Failed to "+action)
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid person ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetPersons godoc
// @Summary List persons
// @Description Search and sort the person directory
// @Tags persons
// @Produce json
// @Param search_by query string false "name, email, date_of_birth, gender, country_name or address"
// @Param search query string false "Case-insensitive fragment"
// @Param sort_by query string false "Field to sort by"
// @Param sort_order query string false "ASC or DESC"
// @Success 200 {object} api.Response{data=[]PersonResponse,meta=ListMeta}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons [get]
func (h *Handler) GetPersons(c *gin.Context) {
	searchBy, search := c.Query("search_by"), c.Query("search")
	sortBy, sortOrder := c.Query("sort_by"), ParseSortOrder(c.Query("sort_order"))

	field, ok := models.ParsePersonSearchField(searchBy)
	if !ok && searchBy != "" {
		h.logger.Debug("unknown search field, returning all persons", map[string]interface{}{"search_by": searchBy})
	}
	sortField, ok := ParseSortField(sortBy)
	if !ok && sortBy != "" {
		h.logger.Debug("unknown sort field, keeping order", map[string]interface{}{"sort_by": sortBy})
	}

	persons, err := h.service.GetFilteredPersons(c.Request.Context(), field, search)
	if err != nil {
		h.writeError(c, err, "fetch persons")
		return
	}
	persons = h.service.GetSortedPersons(persons, sortField, sortOrder)

	api.SuccessResponseWithMeta(c, http.StatusOK, "Persons retrieved successfully", persons, ListMeta{
		Count:     len(persons),
		SearchBy:  field.String(),
		Search:    search,
		SortBy:    sortField.String(),
		SortOrder: sortOrder.String(),
	})
}

// GetPersonByID godoc
// @Summary Get person by ID
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [get]
func (h *Handler) GetPersonByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	person, err := h.service.GetPersonByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "fetch person")
		return
	}
	if person == nil {
		api.NotFoundResponse(c, "Person")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Person retrieved successfully", person)
}

// AddPerson godoc
// @Summary Add a person
// @Tags persons
// @Accept json
// @Produce json
// @Param request body PersonAddRequest true "Person to add"
// @Success 201 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons [post]
func (h *Handler) AddPerson(c *gin.Context) {
	var req PersonAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.Sanitize(h.sanitizer)

	person, err := h.service.AddPerson(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "add person")
		return
	}

	api.CreatedResponse(c, "Person added successfully", person)
}

// UpdatePerson godoc
// @Summary Update a person
// @Description Replaces every editable field of the person
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param request body PersonAddRequest true "New person details"
// @Success 200 {object} api.Response{data=PersonResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [put]
func (h *Handler) UpdatePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PersonUpdateRequest
	if err := c.ShouldBindJSON(&req.PersonAddRequest); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.ID = id
	req.Sanitize(h.sanitizer)

	person, err := h.service.UpdatePerson(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err, "update person")
		return
	}

	api.UpdatedResponse(c, "Person updated successfully", person)
}

// DeletePerson godoc
// @Summary Delete a person
// @Tags persons
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/persons/{id} [delete]
func (h *Handler) DeletePerson(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeletePerson(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "delete person")
		return
	}
	if !deleted {
		api.NotFoundResponse(c, "Person")
		return
	}

	api.DeletedResponse(c, "Person deleted successfully")
}

// ExportCSV godoc
// @Summary Download persons as CSV
// @Tags persons
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/v1/persons/export/csv [get]
func (h *Handler) ExportCSV(c *gin.Context) {
	buf, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "export persons")
		return
	}
	api.FileResponse(c, "persons.csv", csvContentType, buf.Bytes())
}

// ExportExcel godoc
// @Summary Download persons as an Excel workbook
// @Tags persons
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /api/v1/persons/export/xlsx [get]
func (h *Handler) ExportExcel(c *gin.Context) {
	buf, err := h.service.ExportExcel(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "export persons")
		return
	}
	api.FileResponse(c, "persons.xlsx", excelContentType, buf.Bytes())
}
