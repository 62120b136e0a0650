package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/preferences"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
)

// PreferencesHandler reads and patches the dashboard preferences of the
// logged-in user.
type PreferencesHandler struct {
	store preferences.Store
}

func NewPreferencesHandler(store preferences.Store) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión no válida.")
		return
	}

	p, err := preferences.Load(c.Request.Context(), h.store, *userID)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión no válida.")
		return
	}

	var patch preferences.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	current, err := preferences.Load(c.Request.Context(), h.store, *userID)
	if err != nil {
		respond(c, err)
		return
	}

	next := current.With(patch)
	if err := preferences.Save(c.Request.Context(), h.store, *userID, next); err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, next)
}
