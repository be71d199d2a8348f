package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apperr "weatherreminder.app/errors"
	"weatherreminder.app/models"
)

func (s *Server) listSubscriptions(c *gin.Context) {
	subscriptions, err := s.subscriptionService.List(currentUser(c))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscriptions)
}

func (s *Server) createSubscription(c *gin.Context) {
	user := currentUser(c)

	var req models.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	subscription, err := s.subscriptionService.Subscribe(user, &req)
	if err != nil {
		slog.Debug("subscription create failed", "user", user.Username, "error", err)
		s.handleError(c, err)
		return
	}

	slog.Info("subscription created",
		"user", user.Username, "city_id", subscription.City, "frequency", subscription.Frequency)
	c.JSON(http.StatusCreated, subscription)
}

func (s *Server) getSubscription(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}

	subscription, err := s.subscriptionService.Get(currentUser(c), id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

func (s *Server) updateSubscription(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}

	var req models.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	subscription, err := s.subscriptionService.UpdateFrequency(currentUser(c), id, req.Frequency)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

func (s *Server) deleteSubscription(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}

	if err := s.subscriptionService.Unsubscribe(currentUser(c), id); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
