package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/dto"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/garage-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/validation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the client-facing booking form: the mechanic
// picker, the validation contract, and the booking request itself.
type PublicHandler struct {
	createUC *ucBooking.CreateAppointment
	repo     domain.Repository
	roster   *cache.Roster
}

func NewPublicHandler(
	createUC *ucBooking.CreateAppointment,
	repo domain.Repository,
	roster *cache.Roster,
) *PublicHandler {
	return &PublicHandler{
		createUC: createUC,
		repo:     repo,
		roster:   roster,
	}
}

////////////////////////////////////////////////////////
// BOOKING REQUEST
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		CarColor:        req.CarColor,
		CarLicense:      req.CarLicense,
		CarEngine:       req.CarEngine,
		AppointmentDate: req.AppointmentDate,
		MechanicID:      req.MechanicID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

////////////////////////////////////////////////////////
// MECHANIC PICKER
////////////////////////////////////////////////////////

func (h *PublicHandler) ListMechanics(c *gin.Context) {
	ctx := c.Request.Context()

	if options, ok := h.roster.Get(ctx); ok {
		httpresp.List(c, options)
		return
	}

	mechs, err := h.repo.ListMechanics(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_mechanics", "Failed to list mechanics.")
		return
	}

	options := make([]dto.MechanicOptionDTO, 0, len(mechs))
	for _, m := range mechs {
		options = append(options, dto.MechanicOptionDTO{
			ID:   m.ID,
			Name: m.Name,
		})
	}

	h.roster.Set(ctx, options)

	httpresp.List(c, options)
}

////////////////////////////////////////////////////////
// VALIDATION CONTRACT
////////////////////////////////////////////////////////

// ValidationContract hands the booking form the same rule table the
// server enforces, so the rules live in exactly one place.
func (h *PublicHandler) ValidationContract(c *gin.Context) {
	httpresp.List(c, validation.AppointmentRules())
}
