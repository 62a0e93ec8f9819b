package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

type BookingGormRepository struct {
	db     *gorm.DB
	strict bool
	inTx   bool
}

// NewBookingGormRepository builds the postgres-backed repository.
// strict controls whether Transaction opens a real database transaction
// (with a mechanic row lock) or degrades to plain sequential reads.
func NewBookingGormRepository(db *gorm.DB, strict bool) *BookingGormRepository {
	return &BookingGormRepository{db: db, strict: strict}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Mechanic
// --------------------------------------------------

func (r *BookingGormRepository) GetMechanic(
	ctx context.Context,
	id uint,
) (*models.Mechanic, error) {

	q := r.db.WithContext(ctx)
	if r.inTx {
		// Serializes concurrent bookings per mechanic while the slot
		// count and the write commit together.
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var mech models.Mechanic
	if err := q.First(&mech, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &mech, nil
}

func (r *BookingGormRepository) ListMechanics(
	ctx context.Context,
) ([]models.Mechanic, error) {

	var mechs []models.Mechanic
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&mechs).Error; err != nil {
		return nil, err
	}
	return mechs, nil
}

func (r *BookingGormRepository) CreateMechanic(
	ctx context.Context,
	m *models.Mechanic,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *BookingGormRepository) SaveMechanic(
	ctx context.Context,
	m *models.Mechanic,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *BookingGormRepository) DeleteMechanic(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Mechanic{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) CountByMechanic(
	ctx context.Context,
	mechanicID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("mechanic_id = ?", mechanicID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ap, nil
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Mechanic").
		Order("appointment_date ASC, id ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ap).Error
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Slot occupancy
// --------------------------------------------------

func (r *BookingGormRepository) CountByMechanicOnDate(
	ctx context.Context,
	mechanicID uint,
	date time.Time,
	excludeID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("mechanic_id = ? AND appointment_date = ?", mechanicID, date)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CountByClientOnDate(
	ctx context.Context,
	phone string,
	date time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_phone = ? AND appointment_date = ?", phone, date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Atomicity
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	if !r.strict {
		// Fallback mode: original read-then-write behavior, two
		// concurrent requests can both pass the check.
		return fn(r)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, strict: true, inTx: true})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
