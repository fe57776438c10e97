package persons

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/directory/app/countries"
	"github.com/joefazee/directory/internal/deps"
	"github.com/joefazee/directory/models"
)

const (
	PersonRepoKey    = "person_repository"
	PersonServiceKey = "person_service"
)

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	var repo Repository
	if container.UsesDatabase() {
		repo = NewRepository(container.DB)
	} else {
		var seed []models.Person
		if container.Seed {
			seed = DefaultPersons()
		}
		repo = NewMemoryRepository(seed...)
	}
	container.RegisterRepository(PersonRepoKey, repo)
}

// InitServices registers the person service. Countries must be initialized first.
func InitServices(container *deps.Container, cfg Config) {
	service := NewService(
		deps.MustGet[Repository](container.GetRepository, PersonRepoKey),
		deps.MustGet[CountryLookup](container.GetService, countries.CountryLookupKey),
		cfg,
		container.Logger,
		container.Metrics,
	)
	container.RegisterService(PersonServiceKey, service)
}

// Mount mounts person routes
func Mount(r *gin.RouterGroup, container *deps.Container) {
	handler := NewHandler(
		deps.MustGet[Service](container.GetService, PersonServiceKey),
		container.Sanitizer,
		container.Logger,
	)

	personsGroup := r.Group("/persons")
	personsGroup.GET("", handler.GetPersons)
	personsGroup.POST("", handler.AddPerson)
	personsGroup.GET("/export/csv", handler.ExportCSV)
	personsGroup.GET("/export/xlsx", handler.ExportExcel)
	personsGroup.GET("/:id", handler.GetPersonByID)
	personsGroup.PUT("/:id", handler.UpdatePerson)
	personsGroup.DELETE("/:id", handler.DeletePerson)
}
