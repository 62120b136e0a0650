package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

type ClientSearcher interface {
	Search(ctx context.Context, query string) ([]models.Client, error)
}

type ClientHandler struct {
	clients ClientSearcher
}

func NewClientHandler(clients ClientSearcher) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
