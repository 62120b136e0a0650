package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	catalogUC "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/catalog"
)

const maxImageBytes = 5 << 20

type WashTypeHandler struct {
	svc *catalogUC.Service
}

func NewWashTypeHandler(svc *catalogUC.Service) *WashTypeHandler {
	return &WashTypeHandler{svc: svc}
}

// --------- Requests ---------

type CreateWashTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `json:"price"`
	Active      *bool           `json:"active,omitempty"`
}

type UpdateWashTypeRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

// List returns the whole catalog; ?active=true|false narrows it.
func (h *WashTypeHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}

	switch c.Query("active") {
	case "true":
		items = filterActive(items, true)
	case "false":
		items = filterActive(items, false)
	}

	c.JSON(http.StatusOK, items)
}

func (h *WashTypeHandler) Create(c *gin.Context) {
	var req CreateWashTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	wt, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), catalogUC.CreateWashTypeInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, wt)
}

func (h *WashTypeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateWashTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	wt, err := h.svc.Update(c.Request.Context(), middleware.UserID(c), id, catalogUC.UpdateWashTypeInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, wt)
}

func (h *WashTypeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage expects a multipart form with the file in "image".
func (h *WashTypeHandler) UploadImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Falta el fichero de imagen.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "La imagen no es válida.")
		return
	}
	defer f.Close()

	wt, err := h.svc.SetImage(c.Request.Context(), middleware.UserID(c), id, f)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, wt)
}

func filterActive(items []models.WashType, active bool) []models.WashType {
	out := make([]models.WashType, 0, len(items))
	for _, wt := range items {
		if wt.Active == active {
			out = append(out, wt)
		}
	}
	return out
}
