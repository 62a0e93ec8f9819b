package booking

import (
	"context"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment with its mechanic joined, oldest
// date first.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
