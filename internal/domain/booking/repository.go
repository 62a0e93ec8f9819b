package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// ErrNotFound is returned by lookups when the record does not exist,
// regardless of the storage backend.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Mechanic --------
	GetMechanic(
		ctx context.Context,
		id uint,
	) (*models.Mechanic, error)

	ListMechanics(
		ctx context.Context,
	) ([]models.Mechanic, error)

	CreateMechanic(
		ctx context.Context,
		m *models.Mechanic,
	) error

	SaveMechanic(
		ctx context.Context,
		m *models.Mechanic,
	) error

	DeleteMechanic(
		ctx context.Context,
		id uint,
	) error

	// CountByMechanic counts every appointment referencing the mechanic,
	// any date. Used by the restrict delete policy.
	CountByMechanic(
		ctx context.Context,
		mechanicID uint,
	) (int64, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ListAppointments returns every appointment with its mechanic
	// joined, ascending by appointment date.
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Slot occupancy --------

	// CountByMechanicOnDate counts appointments holding the
	// (mechanic, date) slot. excludeID > 0 leaves that appointment out
	// of its own count on the update path.
	CountByMechanicOnDate(
		ctx context.Context,
		mechanicID uint,
		date time.Time,
		excludeID uint,
	) (int64, error)

	CountByClientOnDate(
		ctx context.Context,
		phone string,
		date time.Time,
	) (int64, error)

	// -------- Atomicity --------

	// Transaction runs fn against a transaction-scoped repository so a
	// count-then-write pair commits as one unit. Implementations may
	// degrade to calling fn directly when strict booking is disabled.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
