package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type UserGetter interface {
	Get(ctx context.Context, id uint) (*models.User, error)
}

type MeHandler struct {
	users UserGetter
}

func NewMeHandler(users UserGetter) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Sesión no válida.")
		return
	}

	user, err := h.users.Get(c.Request.Context(), *userID)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(user)})
}
