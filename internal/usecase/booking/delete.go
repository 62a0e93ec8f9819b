package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
	actorID *uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
