package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// stubRepo panics on everything; tests embed it and override only what
// the handler under test is allowed to touch.
type stubRepo struct{}

func (stubRepo) GetMechanic(context.Context, uint) (*models.Mechanic, error) {
	panic("GetMechanic not configured")
}

func (stubRepo) ListMechanics(context.Context) ([]models.Mechanic, error) {
	panic("ListMechanics not configured")
}

func (stubRepo) CreateMechanic(context.Context, *models.Mechanic) error {
	panic("CreateMechanic not configured")
}

func (stubRepo) SaveMechanic(context.Context, *models.Mechanic) error {
	panic("SaveMechanic not configured")
}

func (stubRepo) DeleteMechanic(context.Context, uint) error {
	panic("DeleteMechanic not configured")
}

func (stubRepo) CountByMechanic(context.Context, uint) (int64, error) {
	panic("CountByMechanic not configured")
}

func (stubRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	panic("GetAppointment not configured")
}

func (stubRepo) ListAppointments(context.Context) ([]models.Appointment, error) {
	panic("ListAppointments not configured")
}

func (stubRepo) CreateAppointment(context.Context, *models.Appointment) error {
	panic("CreateAppointment not configured")
}

func (stubRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	panic("UpdateAppointment not configured")
}

func (stubRepo) DeleteAppointment(context.Context, uint) error {
	panic("DeleteAppointment not configured")
}

func (stubRepo) CountByMechanicOnDate(context.Context, uint, time.Time, uint) (int64, error) {
	panic("CountByMechanicOnDate not configured")
}

func (stubRepo) CountByClientOnDate(context.Context, string, time.Time) (int64, error) {
	panic("CountByClientOnDate not configured")
}

func (stubRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	panic("Transaction not configured")
}

type sinkFunc func(actorID *uint, action, entity string, entityID *uint, metadata any) error

func (s sinkFunc) Log(actorID *uint, action, entity string, entityID *uint, metadata any) error {
	return s(actorID, action, entity, entityID, metadata)
}

func discardDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(sinkFunc(
		func(*uint, string, string, *uint, any) error { return nil },
	))
}

// fakeAuth stands in for the JWT middleware on secured routes.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
