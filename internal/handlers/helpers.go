package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
)

// respond maps an error to its HTTP rejection.
func respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		httperr.NotFound(c, "wash_type_not_found", "Tipo de lavado no encontrado.")
	case errors.Is(err, repository.ErrUserNotFound):
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
	default:
		httperr.FromError(c, err)
	}
}

func actorOf(c *gin.Context) appointment.Actor {
	return appointment.Actor{
		UserID:    middleware.UserID(c),
		RequestID: middleware.RequestIDOf(c),
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// dateQuery parses an optional date query parameter in any accepted layout.
// A missing parameter yields the zero time.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		respond(c, err)
		return time.Time{}, false
	}
	return t, true
}
