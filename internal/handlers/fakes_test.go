package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/middleware"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
	"github.com/BruksfildServices01/carwash-scheduler/internal/usecase/appointment"
	catalogUC "github.com/BruksfildServices01/carwash-scheduler/internal/usecase/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------- appointment store ----------

type memAppointments struct {
	mu     sync.Mutex
	nextID uint
	items  []models.Appointment

	// staleDay hides committed rows from day listings, like a concurrent
	// request that read before the other one committed.
	staleDay bool
}

func (r *memAppointments) GetOrCreateClient(_ context.Context, name, phone, email, vehicle string) (*models.Client, error) {
	return &models.Client{ID: 1, Name: name, Phone: phone, Email: email, VehicleModel: vehicle}, nil
}

func (r *memAppointments) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.items {
		if ap.ID == id {
			return &ap, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memAppointments) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.items {
		if f.Status == "" || ap.Status == string(f.Status) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memAppointments) ListAppointmentsForDay(_ context.Context, date time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleDay {
		return nil, nil
	}
	var out []models.Appointment
	for _, ap := range r.items {
		if domain.SameDay(ap.Date, date) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memAppointments) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.items {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !domain.CheckAvailability(ap.Date, ap.Time, r.items) {
		return &domain.SlotConflictError{Date: ap.Date, Time: ap.Time}
	}
	r.nextID++
	ap.ID = r.nextID
	r.items = append(r.items, *ap)
	return nil
}

func (r *memAppointments) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == ap.ID {
			r.items[i] = *ap
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memAppointments) DeleteAppointment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ---------- catalog ----------

type memCatalog struct {
	items []models.WashType
}

func (r *memCatalog) List(context.Context) ([]models.WashType, error) {
	return append([]models.WashType(nil), r.items...), nil
}

func (r *memCatalog) Get(_ context.Context, id uint) (*models.WashType, error) {
	for _, wt := range r.items {
		if wt.ID == id {
			return &wt, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (r *memCatalog) Create(_ context.Context, wt *models.WashType) error {
	wt.ID = uint(len(r.items) + 1)
	r.items = append(r.items, *wt)
	return nil
}

func (r *memCatalog) Update(_ context.Context, wt *models.WashType) error {
	for i := range r.items {
		if r.items[i].ID == wt.ID {
			r.items[i] = *wt
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (r *memCatalog) Delete(_ context.Context, id uint) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return catalog.ErrNotFound
}

// ---------- wiring ----------

// 2025-03-05 10:00 in Madrid.
var testNow = time.Date(2025, 3, 5, 10, 0, 0, 0, timezone.Location("Europe/Madrid"))

type testApp struct {
	router       *gin.Engine
	appointments *memAppointments
	catalog      *memCatalog
}

func newTestApp() *testApp {
	apps := &memAppointments{}
	cat := &memCatalog{items: []models.WashType{
		{ID: 1, Name: "Exterior", Price: decimal.RequireFromString("12.50"), Active: true},
		{ID: 2, Name: "Motor", Price: decimal.RequireFromString("20.00"), Active: false},
	}}

	settings := appointment.Settings{
		Hours:     domain.BusinessHours{Opening: "09:00", Closing: "12:00", SlotDurationMinutes: 60},
		WeekStart: time.Monday,
		Clock:     timezone.FixedClock(testNow),
	}

	svc := catalogUC.NewService(cat, nil, nil, nil, nil, zerolog.Nop())
	ah := NewAppointmentHandler(apps, svc, nil, settings)
	ph := NewPublicHandler(svc, ah)
	wh := NewWashTypeHandler(svc)

	r := gin.New()
	r.Use(middleware.RequestID())

	// sem JWT nos testes: o usuário 1 é injetado direto no contexto
	api := r.Group("/api", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
	})
	api.GET("/appointments", ah.List)
	api.POST("/appointments", ah.Create)
	api.GET("/appointments/availability", ah.Availability)
	api.GET("/appointments/calendar", ah.Calendar)
	api.GET("/appointments/:id", ah.Get)
	api.PUT("/appointments/:id", ah.Update)
	api.DELETE("/appointments/:id", ah.Delete)
	api.PATCH("/appointments/:id/status", ah.UpdateStatus)
	api.PATCH("/appointments/:id/confirm", ah.Confirm)
	api.PATCH("/appointments/:id/cancel", ah.Cancel)
	api.PATCH("/appointments/:id/complete", ah.Complete)
	api.GET("/business-hours", ah.BusinessHours)
	api.GET("/wash-types", wh.List)
	api.POST("/wash-types", wh.Create)
	api.PATCH("/wash-types/:id", wh.Update)
	api.DELETE("/wash-types/:id", wh.Delete)
	api.POST("/wash-types/:id/image", wh.UploadImage)

	public := r.Group("/api/public")
	public.GET("/wash-types", ph.ListWashTypes)
	public.GET("/availability", ph.Availability)
	public.POST("/appointments", ph.CreateAppointment)

	return &testApp{router: r, appointments: apps, catalog: cat}
}
