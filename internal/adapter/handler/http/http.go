package http

import (
	"errors"
	"net/http"

	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/domain"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/ports"
	"github.com/Thush1998/Vehicle-Mangement-App/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader     = "X-Session-ID"
	sessionContextKey = "client_session"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type successResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// respondServiceError maps the engine's error taxonomy onto HTTP statuses.
// A partial-consistency failure gets its own code: the client must be able to
// warn that mileage and history have diverged instead of showing a generic
// failure toast.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var partialErr *domain.PartialConsistencyError
	var storeErr *domain.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
			Error: validationErr.Error(),
			Code:  "validation_error",
		})
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{
			Error: err.Error(),
			Code:  "not_found",
		})
	case errors.As(err, &partialErr):
		c.AbortWithStatusJSON(http.StatusConflict, errorResponse{
			Error: partialErr.Error(),
			Code:  "partial_consistency",
		})
	case errors.As(err, &storeErr):
		c.AbortWithStatusJSON(http.StatusBadGateway, errorResponse{
			Error: storeErr.Error(),
			Code:  "store_error",
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error: "internal error",
		})
	}
}

// SessionMiddleware restores the caller's session from the X-Session-ID
// header, minting a fresh id when none is supplied, and echoes the id back so
// clients can persist it. A session-store failure degrades to an empty
// in-memory session; the request still proceeds.
func SessionMiddleware(sessions *services.SessionStore, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		session, err := sessions.Load(c.Request.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to load session, continuing without selection", map[string]interface{}{
				"error":      err.Error(),
				"session_id": sessionID,
			})
			session = &domain.Session{ID: sessionID}
		}

		c.Header(sessionHeader, sessionID)
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func getSession(c *gin.Context) *domain.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*domain.Session)
	if !ok {
		return nil
	}
	return session
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
