package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	checkoutdomain "github.com/soundshelf/soundshelf/internal/checkout/domain"
	listingdomain "github.com/soundshelf/soundshelf/internal/listing/domain"
	songdomain "github.com/soundshelf/soundshelf/internal/song/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
)

// ErrorHandlingMiddleware turns handler errors into structured
// responses. Raw error detail stays in the server logs only.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, songdomain.ErrMissingUploader),
		errors.Is(err, songdomain.ErrMissingTitle),
		errors.Is(err, songdomain.ErrInvalidSlots):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: validationMessage(err),
		}
	case errors.Is(err, songdomain.ErrUnknownUploader):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "not authorized to upload",
		}
	case errors.Is(err, ErrNotFound),
		errors.Is(err, songdomain.ErrNotFound),
		errors.Is(err, checkoutdomain.ErrUserNotFound),
		errors.Is(err, checkoutdomain.ErrSongNotFound),
		errors.Is(err, listingdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, checkoutdomain.ErrNoSlots):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "no listening slots available",
		}
	case errors.Is(err, songdomain.ErrDuplicateTitle):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "song title already exists",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, songdomain.ErrMissingUploader):
		return "missing uploader"
	case errors.Is(err, songdomain.ErrMissingTitle):
		return "missing song name"
	case errors.Is(err, songdomain.ErrInvalidSlots):
		return "listen_slots must be a positive integer"
	default:
		return "invalid request"
	}
}
