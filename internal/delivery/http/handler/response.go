package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gdugdh24/creatormatch-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrVideoNotFound, http.StatusNotFound},
	{domain.ErrCampaignNotFound, http.StatusNotFound},
	{domain.ErrMatchNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrInvalidStatus, http.StatusBadRequest},
	{domain.ErrUserAlreadyExists, http.StatusConflict},
	{domain.ErrMatchExists, http.StatusConflict},
	{domain.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
	{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{domain.ErrAssistantUnavailable, http.StatusServiceUnavailable},
}

// respondError maps domain errors to their status code. Anything else is
// reported as a 500 with the given message so internals do not leak.
func respondError(c *gin.Context, err error, internalMessage string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.JSON(e.status, ErrorResponse{Error: e.err.Error()})
			return
		}
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMessage})
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func currentActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "unauthorized",
		})
		return domain.Actor{}, false
	}
	return actor, true
}
