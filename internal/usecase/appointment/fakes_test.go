package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/carwash-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
	"github.com/BruksfildServices01/carwash-scheduler/internal/timezone"
)

// memoryRepo mimics the gorm repository, including the active-slot index.
type memoryRepo struct {
	mu      sync.Mutex
	nextID  uint
	items   []models.Appointment
	clients map[string]models.Client
	washes  map[uint]models.WashType
}

func newMemoryRepo(washes []models.WashType) *memoryRepo {
	r := &memoryRepo{clients: map[string]models.Client{}, washes: map[uint]models.WashType{}}
	for _, wt := range washes {
		r.washes[wt.ID] = wt
	}
	return r
}

func (r *memoryRepo) GetOrCreateClient(_ context.Context, name, phone, email, vehicle string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.clients[phone]; ok {
		return &c, nil
	}
	c := models.Client{ID: uint(len(r.clients) + 1), Name: name, Phone: phone, Email: email, VehicleModel: vehicle}
	r.clients[phone] = c
	return &c, nil
}

func (r *memoryRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.items {
		if ap.ID == id {
			ap.WashType = r.washes[ap.WashTypeID]
			return &ap, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *memoryRepo) ListAppointmentsForDay(_ context.Context, date time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.items {
		if domain.SameDay(ap.Date, date) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
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

func (r *memoryRepo) slotTaken(ap *models.Appointment) bool {
	if !domain.Status(ap.Status).IsActive() {
		return false
	}
	return !domain.CheckAvailabilityExcept(ap.Date, ap.Time, r.items, ap.ID)
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTaken(ap) {
		return &domain.SlotConflictError{Date: ap.Date, Time: ap.Time}
	}
	r.nextID++
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()
	r.items = append(r.items, *ap)
	return nil
}

func (r *memoryRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTaken(ap) {
		return &domain.SlotConflictError{Date: ap.Date, Time: ap.Time}
	}
	for i := range r.items {
		if r.items[i].ID == ap.ID {
			r.items[i] = *ap
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) DeleteAppointment(_ context.Context, id uint) error {
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

// staleDayRepo answers day listings as if another request had not committed
// yet, so only the store-side slot rule can catch the conflict.
type staleDayRepo struct {
	*memoryRepo
}

func (staleDayRepo) ListAppointmentsForDay(context.Context, time.Time) ([]models.Appointment, error) {
	return nil, nil
}

type staticCatalog []models.WashType

func (c staticCatalog) List(context.Context) ([]models.WashType, error) {
	return c, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Write(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *recordingSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

var testWashTypes = staticCatalog{
	{ID: 1, Name: "Exterior", Price: decimal.RequireFromString("12.50"), Active: true},
	{ID: 2, Name: "Completo", Price: decimal.RequireFromString("30.00"), Active: true},
	{ID: 3, Name: "Tapicería", Price: decimal.RequireFromString("45.00"), Active: false},
}

// 2025-03-05 12:00 in Madrid.
var testNow = time.Date(2025, 3, 5, 12, 0, 0, 0, timezone.Location("Europe/Madrid"))

func testSettings() Settings {
	return Settings{
		Hours:     domain.BusinessHours{Opening: "09:00", Closing: "19:00", SlotDurationMinutes: 30},
		WeekStart: time.Monday,
		Clock:     timezone.FixedClock(testNow),
	}
}

type harness struct {
	repo     *memoryRepo
	sink     *recordingSink
	dispatch *audit.Dispatcher
	settings Settings
}

func newHarness() *harness {
	sink := &recordingSink{}
	return &harness{
		repo:     newMemoryRepo(testWashTypes),
		sink:     sink,
		dispatch: audit.NewDispatcher(sink, zerolog.Nop()),
		settings: testSettings(),
	}
}

func candidateAt(date, clock string) domain.Candidate {
	return domain.Candidate{
		ClientName:   "Marta Gil",
		Phone:        "612 345 678",
		Email:        "marta@example.es",
		Date:         date,
		Time:         clock,
		WashTypeID:   1,
		VehicleModel: "Toyota Corolla",
	}
}

func (h *harness) create(date, clock string) *models.Appointment {
	ap, err := NewCreateAppointment(h.repo, testWashTypes, h.dispatch, h.settings).
		Execute(context.Background(), CreateAppointmentInput{Candidate: candidateAt(date, clock)})
	if err != nil {
		panic(err)
	}
	return ap
}
