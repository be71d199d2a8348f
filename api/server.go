// Package api implements the HTTP JSON REST API
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherreminder.app/config"
	apperr "weatherreminder.app/errors"
	"weatherreminder.app/models"
	"weatherreminder.app/service"
)

// Server represents the HTTP server and API handlers
type Server struct {
	router              *gin.Engine
	config              *config.Config
	authService         service.AuthServiceInterface
	locationService     service.LocationServiceInterface
	subscriptionService service.SubscriptionServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(
	config *config.Config,
	authService service.AuthServiceInterface,
	locationService service.LocationServiceInterface,
	subscriptionService service.SubscriptionServiceInterface,
) *Server {
	router := gin.Default()

	server := &Server{
		router:              router,
		config:              config,
		authService:         authService,
		locationService:     locationService,
		subscriptionService: subscriptionService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api")
	{
		api.GET("/health", s.health)

		api.POST("/register/", s.register)
		api.POST("/token/", s.obtainToken)
		api.POST("/token/refresh/", s.refreshToken)

		api.GET("/countries/", s.listCountries)
		api.GET("/countries/:id/", s.getCountry)
		api.GET("/countries/:id/cities/", s.listCities)
		api.GET("/countries/:id/cities/:cityID/", s.getCity)

		subscriptions := api.Group("/accounts/subscriptions", s.requireAuth())
		{
			subscriptions.GET("/", s.listSubscriptions)
			subscriptions.POST("/", s.createSubscription)
			subscriptions.GET("/:id/", s.getSubscription)
			subscriptions.PATCH("/:id/", s.updateSubscription)
			subscriptions.DELETE("/:id/", s.deleteSubscription)
		}
	}
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleError maps application errors to HTTP responses. Not-found lookups use
// the DRF-compatible {"detail": "Not found."} body the API clients expect.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case apperr.ValidationError:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: appErr.Message})
	case apperr.NotFoundError:
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case apperr.AlreadyExistsError:
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: appErr.Message})
	case apperr.UnauthorizedError:
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: appErr.Message})
	case apperr.ForbiddenError:
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: appErr.Message})
	case apperr.ExternalAPIError:
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "External service unavailable"})
	case apperr.EmailError:
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Unable to send email"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}
