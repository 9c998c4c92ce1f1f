package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	songdomain "github.com/soundshelf/soundshelf/internal/song/domain"
	"go.uber.org/zap"
)

// UploadSong receives the multipart song upload. The upload is spooled
// to a temp file which is removed on every exit path, including
// rejection before any store is touched.
func (s *Server) UploadSong(c *gin.Context) {
	fileHeader, err := c.FormFile("musicfile")
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	// Cleanup is armed before spooling so a partial write is removed too.
	tmpPath := filepath.Join(s.cfg.UploadTmpDir, uuid.NewString())
	defer func() {
		if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("temp upload not removed", zap.String("path", tmpPath), zap.Error(err))
		}
	}()
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		AbortWithError(c, err)
		return
	}

	listenSlots, err := strconv.Atoi(strings.TrimSpace(c.PostForm("listen_slots")))
	if err != nil {
		AbortWithError(c, songdomain.ErrInvalidSlots)
		return
	}

	tmpFile, err := os.Open(tmpPath)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer tmpFile.Close()

	result, err := s.songSvc.Upload(c.Request.Context(), songdomain.UploadRequest{
		Username:     c.PostForm("username"),
		SongName:     c.PostForm("song_name"),
		Lyrics:       c.PostForm("lyrics"),
		ListenSlots:  listenSlots,
		Country:      c.PostForm("country"),
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Body:         tmpFile,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.metrics.RecordUpload()
	c.HTML(http.StatusCreated, "uploaded.tmpl", gin.H{
		"Title":     result.Song.SongTitle,
		"StoredKey": result.StoredKey,
	})
}
