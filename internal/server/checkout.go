package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CheckoutSong claims a listening slot and renders the confirmation.
func (s *Server) CheckoutSong(c *gin.Context) {
	songTitle := strings.TrimSpace(c.Param("songtitle"))
	user := strings.TrimSpace(c.Query("user"))

	result, err := s.checkoutSvc.Checkout(c.Request.Context(), songTitle, user)
	if err != nil {
		s.metrics.RecordCheckout("error")
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordCheckout("ok")
	c.HTML(http.StatusOK, "musicplayed.tmpl", gin.H{
		"CheckoutID":  result.CheckoutID,
		"PlayCount":   result.PlayCount,
		"Song":        result.Song,
		"CountryCode": result.CountryCode,
		"User":        user,
	})
}

// ReleaseSlot frees a listening slot and sends the caller home.
// Releasing an id that is already gone still redirects.
func (s *Server) ReleaseSlot(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Query("id")), 10, 64)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	user := strings.TrimSpace(c.Query("user"))

	if err := s.checkoutSvc.Release(c.Request.Context(), id, user); err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordRelease()
	c.Redirect(http.StatusFound, "/")
}
