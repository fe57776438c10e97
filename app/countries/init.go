package countries

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory/internal/deps"
	"github.com/joefazee/directory/models"
)

const (
	CountryRepoKey    = "country_repository"
	CountryServiceKey = "country_service"
	CountryLookupKey  = "country_lookup"
)

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	var repo Repository
	if container.UsesDatabase() {
		repo = NewRepository(container.DB)
	} else {
		var seed []models.Country
		if container.Seed {
			seed = DefaultCountries()
		}
		repo = NewMemoryRepository(seed...)
	}
	container.RegisterRepository(CountryRepoKey, repo)
}

// InitServices registers the country service and the name resolver used by persons
func InitServices(container *deps.Container) {
	repo := deps.MustGet[Repository](container.GetRepository, CountryRepoKey)
	service := NewService(repo, container.Logger, container.Metrics)
	container.RegisterService(CountryServiceKey, service)
	container.RegisterService(CountryLookupKey,
		NewNameResolver(service, container.Cache, container.CacheTTL, container.Logger))
}

// Mount mounts country routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(
		deps.MustGet[Service](container.GetService, CountryServiceKey),
		container.Sanitizer,
	)

	countriesGroup := r.Group("/countries")
	countriesGroup.GET("", handler.GetAllCountries)
	countriesGroup.GET("/:id", handler.GetCountryByID)
	countriesGroup.POST("", handler.AddCountry)
	countriesGroup.POST("/upload", handler.UploadCountries)
}
