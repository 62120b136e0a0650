package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUC "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the booking form. It reuses the dashboard use cases,
// with no authenticated actor.
type PublicHandler struct {
	catalog      *catalogUC.Service
	appointments *AppointmentHandler
}

func NewPublicHandler(catalog *catalogUC.Service, appointments *AppointmentHandler) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		appointments: appointments,
	}
}

////////////////////////////////////////////////////////
// WASH TYPES (só ativos)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListWashTypes(c *gin.Context) {
	items, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

////////////////////////////////////////////////////////
// AVAILABILITY / CREATE
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	h.appointments.Availability(c)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	h.appointments.Create(c)
}
