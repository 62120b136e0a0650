package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/dto"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
	"github.com/BruksfildServices01/carwash-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	settings appointment.Settings

	create       *appointment.CreateAppointment
	update       *appointment.UpdateAppointment
	remove       *appointment.DeleteAppointment
	transition   *appointment.TransitionAppointment
	get          *appointment.GetAppointment
	list         *appointment.ListAppointments
	byDate       *appointment.ListAppointmentsByDate
	availability *appointment.GetAvailability
	calendar     *appointment.GetCalendarMonth
}

func NewAppointmentHandler(
	repo domain.Repository,
	catalog domain.Catalog,
	dispatcher *audit.Dispatcher,
	settings appointment.Settings,
) *AppointmentHandler {
	return &AppointmentHandler{
		settings:     settings,
		create:       appointment.NewCreateAppointment(repo, catalog, dispatcher, settings),
		update:       appointment.NewUpdateAppointment(repo, catalog, dispatcher, settings),
		remove:       appointment.NewDeleteAppointment(repo, dispatcher),
		transition:   appointment.NewTransitionAppointment(repo, dispatcher, settings),
		get:          appointment.NewGetAppointment(repo),
		list:         appointment.NewListAppointments(repo),
		byDate:       appointment.NewListAppointmentsByDate(repo),
		availability: appointment.NewGetAvailability(repo, settings),
		calendar:     appointment.NewGetCalendarMonth(repo, settings),
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest is the full editable record. Every field is checked by
// the domain validator so the client gets all field errors at once.
type AppointmentRequest struct {
	ClientName   string `json:"client_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	WashTypeID   uint   `json:"wash_type_id"`
	VehicleModel string `json:"vehicle_model"`
	Notes        string `json:"notes"`
}

func (r AppointmentRequest) candidate() domain.Candidate {
	return domain.Candidate{
		ClientName:   r.ClientName,
		Phone:        r.Phone,
		Email:        r.Email,
		Date:         r.Date,
		Time:         r.Time,
		WashTypeID:   r.WashTypeID,
		VehicleModel: r.VehicleModel,
		Notes:        r.Notes,
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointment.CreateAppointmentInput{
		Actor:     actorOf(c),
		Candidate: req.candidate(),
	})
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(*ap))
}

// ======================================================
// READ
// ======================================================

// List serves ?date= as the day view; otherwise filters by status, query and range.
func (h *AppointmentHandler) List(c *gin.Context) {
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	if !date.IsZero() {
		out, err := h.byDate.Execute(c.Request.Context(), date)
		if err != nil {
			respond(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	filter := domain.ListFilter{Query: c.Query("query")}

	if raw := c.Query("status"); raw != "" {
		st, ok := domain.ParseStatus(raw)
		if !ok {
			httperr.BadRequest(c, "invalid_status", "Estado inválido.")
			return
		}
		filter.Status = st
	}

	if filter.From, ok = dateQuery(c, "from"); !ok {
		return
	}
	if filter.To, ok = dateQuery(c, "to"); !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		respond(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), appointment.UpdateAppointmentInput{
		Actor:     actorOf(c),
		ID:        id,
		Candidate: req.candidate(),
	})
	if err != nil {
		respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorOf(c), id); err != nil {
		respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	st, ok := domain.ParseStatus(req.Status)
	if !ok {
		httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		return
	}
	h.moveTo(c, st)
}

func (h *AppointmentHandler) Confirm(c *gin.Context)  { h.moveTo(c, domain.StatusConfirmed) }
func (h *AppointmentHandler) Cancel(c *gin.Context)   { h.moveTo(c, domain.StatusCancelled) }
func (h *AppointmentHandler) Complete(c *gin.Context) { h.moveTo(c, domain.StatusCompleted) }

func (h *AppointmentHandler) moveTo(c *gin.Context, target domain.Status) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), actorOf(c), id, target)
	if err != nil {
		respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(*ap))
}

// ======================================================
// AVAILABILITY / CALENDAR
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	if c.Query("date") == "" {
		httperr.BadRequest(c, "missing_date", "La fecha es obligatoria.")
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{Date: date})
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  domain.FormatDate(date),
		"slots": slots,
	})
}

// Calendar defaults to the current month.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	today := h.settings.Clock.Today()
	year, month := today.Year(), today.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			httperr.BadRequest(c, "invalid_year", "Año inválido.")
			return
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", "Mes inválido.")
			return
		}
		month = time.Month(m)
	}

	out, err := h.calendar.Execute(c.Request.Context(), year, month)
	if err != nil {
		respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

// BusinessHours exposes the slot grid the dashboard renders.
func (h *AppointmentHandler) BusinessHours(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"opening_time":          h.settings.Hours.Opening,
		"closing_time":          h.settings.Hours.Closing,
		"slot_duration_minutes": h.settings.Hours.SlotDurationMinutes,
		"slots":                 h.settings.Hours.Slots(),
		"week_start":            h.settings.WeekStart.String(),
		"auto_confirm":          h.settings.AutoConfirm,
	})
}
