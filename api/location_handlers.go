package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperr "weatherreminder.app/errors"
	"weatherreminder.app/repository"
)

// pathID parses a numeric path parameter; a malformed value behaves like a
// missing record
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperr.NewNotFoundError("not found")
	}
	return uint(id), nil
}

func (s *Server) listCountries(c *gin.Context) {
	countries, err := s.locationService.ListCountries(c.Query("search"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

func (s *Server) getCountry(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}

	country, err := s.locationService.GetCountry(id)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

func (s *Server) listCities(c *gin.Context) {
	countryID, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}

	filter := repository.CityFilter{Search: c.Query("search")}
	if activeParam := c.Query("active"); activeParam != "" {
		active, err := strconv.ParseBool(activeParam)
		if err != nil {
			s.handleError(c, apperr.NewValidationError("active must be a boolean"))
			return
		}
		filter.Active = &active
	}

	cities, err := s.locationService.ListCities(countryID, filter)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (s *Server) getCity(c *gin.Context) {
	countryID, err := pathID(c, "id")
	if err != nil {
		s.handleError(c, err)
		return
	}
	cityID, err := pathID(c, "cityID")
	if err != nil {
		s.handleError(c, err)
		return
	}

	city, err := s.locationService.GetCity(countryID, cityID)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}
