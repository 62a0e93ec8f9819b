package booking

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/validation"
)

type UpdateAppointmentInput struct {
	ID uint

	// Only supplied fields change; nil leaves the stored value alone.
	AppointmentDate *string
	MechanicID      *uint

	ActorID *uint
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	var newDate *time.Time
	if in.AppointmentDate != nil {
		d, err := dates.Parse(*in.AppointmentDate)
		if err != nil {
			return nil, validation.Violation("appointment_date")
		}
		newDate = &d
	}
	if in.MechanicID != nil && *in.MechanicID == 0 {
		return nil, validation.Violation("mechanic_id")
	}

	var updated *models.Appointment

	err := uc.repo.Transaction(ctx, func(r domain.Repository) error {

		ap, err := r.GetAppointment(ctx, in.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness("appointment_not_found")
			}
			return err
		}

		// Nothing moves, nothing to re-check.
		if newDate == nil && in.MechanicID == nil {
			if err := r.UpdateAppointment(ctx, ap); err != nil {
				return err
			}
			updated = ap
			return nil
		}

		// Effective slot after the update: changed fields merged over
		// the stored ones.
		effMechanicID := ap.MechanicID
		if in.MechanicID != nil {
			effMechanicID = *in.MechanicID
		}
		effDate := ap.AppointmentDate
		if newDate != nil {
			effDate = *newDate
		}

		// Lock the target mechanic before counting, same as the create
		// path, so the count cannot go stale under a concurrent booking.
		mech, err := r.GetMechanic(ctx, effMechanicID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		otherCount, err := r.CountByMechanicOnDate(ctx, effMechanicID, effDate, ap.ID)
		if err != nil {
			return err
		}

		// Client uniqueness is deliberately not re-checked here, the
		// phone never changes after creation.
		if err := domain.AdmitReschedule(mech, otherCount); err != nil {
			return err
		}

		ap.MechanicID = effMechanicID
		ap.AppointmentDate = effDate

		if err := r.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})

	return updated, nil
}
