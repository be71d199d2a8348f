package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apperr "weatherreminder.app/errors"
	"weatherreminder.app/models"
)

// register creates a new user account. The endpoint is unauthenticated-only:
// callers presenting a valid access token are rejected.
func (s *Server) register(c *gin.Context) {
	if token, ok := bearerToken(c); ok {
		if _, err := s.authService.Authenticate(token); err == nil {
			s.handleError(c, apperr.NewForbiddenError("you are already authenticated"))
			return
		}
	}

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("registration binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	response, err := s.authService.Register(&req)
	if err != nil {
		slog.Warn("registration failed", "username", req.Username, "error", err)
		s.handleError(c, err)
		return
	}

	slog.Info("user registered", "username", response.Username)
	c.JSON(http.StatusCreated, response)
}

// obtainToken issues an access/refresh pair for valid credentials
func (s *Server) obtainToken(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	tokens, err := s.authService.Login(&req)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// refreshToken exchanges a refresh token for a new access token
func (s *Server) refreshToken(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	access, err := s.authService.Refresh(req.Refresh)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}
