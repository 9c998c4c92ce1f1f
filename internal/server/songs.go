package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListAllSongs renders every uploaded song with its country code.
func (s *Server) ListAllSongs(c *gin.Context) {
	songs, err := s.songSvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "musiclist.tmpl", gin.H{"Songs": songs})
}

// ListSongsToPlay renders the listen view with availability flags; the
// caller's username is threaded through to the checkout links.
func (s *Server) ListSongsToPlay(c *gin.Context) {
	user := strings.TrimSpace(c.Query("user"))

	songs, err := s.songSvc.ListForListening(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "musictoplay.tmpl", gin.H{
		"Songs": songs,
		"User":  user,
	})
}
