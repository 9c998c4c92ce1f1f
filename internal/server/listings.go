package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListingCountries returns the distinct countries in the listings
// collection.
func (s *Server) ListingCountries(c *gin.Context) {
	values, err := s.listingSvc.Countries(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": values})
}

// SearchListings returns projected listings for a country, capped at
// the default limit.
func (s *Server) SearchListings(c *gin.Context) {
	country := strings.TrimSpace(c.Query("country"))
	if country == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var limit int64
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		limit = parsed
	}

	results, err := s.listingSvc.Search(c.Request.Context(), country, limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}

// GetListing returns one listing in its normalized shape.
func (s *Server) GetListing(c *gin.Context) {
	listing, err := s.listingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": listing})
}
