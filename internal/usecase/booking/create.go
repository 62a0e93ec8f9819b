package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/dates"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/validation"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string

	CarColor   string
	CarLicense string
	CarEngine  string

	AppointmentDate string
	MechanicID      uint

	// ActorID is nil for public booking requests.
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validation.CheckAppointment(validation.AppointmentForm{
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		CarColor:        in.CarColor,
		CarLicense:      in.CarLicense,
		CarEngine:       in.CarEngine,
		AppointmentDate: in.AppointmentDate,
		MechanicID:      in.MechanicID,
	}); err != nil {
		return nil, err
	}

	date, err := dates.Parse(in.AppointmentDate)
	if err != nil {
		return nil, err
	}

	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(r domain.Repository) error {

		// The mechanic row lock must be held before the slot count runs,
		// otherwise a concurrent booking can read a stale count and
		// overshoot the capacity once both commit.
		mech, err := r.GetMechanic(ctx, in.MechanicID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		slotCount, err := r.CountByMechanicOnDate(ctx, in.MechanicID, date, 0)
		if err != nil {
			return err
		}

		clientCount, err := r.CountByClientOnDate(ctx, in.ClientPhone, date)
		if err != nil {
			return err
		}

		if err := domain.AdmitCreate(mech, slotCount, clientCount); err != nil {
			return err
		}

		ap := &models.Appointment{
			ClientName:      in.ClientName,
			ClientPhone:     in.ClientPhone,
			CarColor:        in.CarColor,
			CarLicense:      in.CarLicense,
			CarEngine:       in.CarEngine,
			AppointmentDate: date,
			MechanicID:      in.MechanicID,
		}

		if err := r.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
