package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joefazee/directory/app/api"
	"github.com/joefazee/directory/app/countries"
	"github.com/joefazee/directory/app/persons"
	"github.com/joefazee/directory/internal/deps"
	"github.com/joefazee/directory/internal/router"
)

// InitModules registers every repository and service.
// Countries come first because persons resolve names through them.
func InitModules(container *deps.Container, cfg *Config) {
	countries.InitRepositories(container)
	persons.InitRepositories(container)

	countries.InitServices(container)
	persons.InitServices(container, cfg.Persons)
}

// NewRouter builds the HTTP engine. Metrics registered with gatherer are served at /metrics.
func NewRouter(cfg *Config, container *deps.Container, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware(), container.Metrics.Middleware())
	if cfg.Env != "production" {
		r.Use(gin.Logger())
	}

	r.GET("/healthz", api.HealthCheck(cfg.Env, cfg.Storage.Driver))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.NewMounter(container).
		Public(r).
		Mount(countries.Mount).
		Mount(persons.Mount)

	return r
}
