package booking

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository so the admission paths run
// against real state without postgres.
type fakeRepo struct {
	mechanics    map[uint]models.Mechanic
	appointments map[uint]models.Appointment
	nextID       uint

	slotCountCalls int
	txRuns         int

	// ops records store calls in order, for lock-before-count checks.
	ops []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		mechanics:    make(map[uint]models.Mechanic),
		appointments: make(map[uint]models.Appointment),
	}
}

func (f *fakeRepo) addMechanic(name string, maxActiveCars int) uint {
	f.nextID++
	f.mechanics[f.nextID] = models.Mechanic{
		ID:            f.nextID,
		Name:          name,
		MaxActiveCars: maxActiveCars,
	}
	return f.nextID
}

func (f *fakeRepo) addAppointment(ap models.Appointment) uint {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[f.nextID] = ap
	return f.nextID
}

// -------- Mechanic --------

func (f *fakeRepo) GetMechanic(ctx context.Context, id uint) (*models.Mechanic, error) {
	f.ops = append(f.ops, "GetMechanic")

	m, ok := f.mechanics[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (f *fakeRepo) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	out := make([]models.Mechanic, 0, len(f.mechanics))
	for _, m := range f.mechanics {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) CreateMechanic(ctx context.Context, m *models.Mechanic) error {
	f.nextID++
	m.ID = f.nextID
	f.mechanics[m.ID] = *m
	return nil
}

func (f *fakeRepo) SaveMechanic(ctx context.Context, m *models.Mechanic) error {
	f.mechanics[m.ID] = *m
	return nil
}

func (f *fakeRepo) DeleteMechanic(ctx context.Context, id uint) error {
	if _, ok := f.mechanics[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.mechanics, id)
	return nil
}

func (f *fakeRepo) CountByMechanic(ctx context.Context, mechanicID uint) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if ap.MechanicID == mechanicID {
			count++
		}
	}
	return count, nil
}

// -------- Appointment --------

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, ap := range f.appointments {
		if m, ok := f.mechanics[ap.MechanicID]; ok {
			ap.Mechanic = m
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppointmentDate.Equal(out[j].AppointmentDate) {
			return out[i].AppointmentDate.Before(out[j].AppointmentDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return domain.ErrNotFound
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.appointments, id)
	return nil
}

// -------- Slot occupancy --------

func (f *fakeRepo) CountByMechanicOnDate(
	ctx context.Context,
	mechanicID uint,
	date time.Time,
	excludeID uint,
) (int64, error) {
	f.ops = append(f.ops, "CountByMechanicOnDate")
	f.slotCountCalls++

	var count int64
	for _, ap := range f.appointments {
		if excludeID > 0 && ap.ID == excludeID {
			continue
		}
		if ap.MechanicID == mechanicID && ap.AppointmentDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CountByClientOnDate(
	ctx context.Context,
	phone string,
	date time.Time,
) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if ap.ClientPhone == phone && ap.AppointmentDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

// -------- Atomicity --------

func (f *fakeRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	f.txRuns++
	return fn(f)
}

var _ domain.Repository = (*fakeRepo)(nil)

// -------- Audit helpers --------

type sinkFunc func(actorID *uint, action, entity string, entityID *uint, metadata any) error

func (s sinkFunc) Log(actorID *uint, action, entity string, entityID *uint, metadata any) error {
	return s(actorID, action, entity, entityID, metadata)
}

func discardDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(sinkFunc(
		func(*uint, string, string, *uint, any) error { return nil },
	))
}

func newRecordingDispatcher(actions chan<- string) *audit.Dispatcher {
	return audit.NewDispatcher(sinkFunc(
		func(_ *uint, action, _ string, _ *uint, _ any) error {
			actions <- action
			return nil
		},
	))
}
