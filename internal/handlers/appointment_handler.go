package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/garage-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/validation"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucBooking.CreateAppointment
	updateUC *ucBooking.UpdateAppointment
	deleteUC *ucBooking.DeleteAppointment
	listUC   *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	updateUC *ucBooking.UpdateAppointment,
	deleteUC *ucBooking.DeleteAppointment,
	listUC *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Field presence is checked by the shared validation contract, not by
// binding tags, so the first violated rule's message reaches the form.
type CreateAppointmentRequest struct {
	ClientName      string `json:"client_name"`
	ClientPhone     string `json:"client_phone"`
	CarColor        string `json:"car_color"`
	CarLicense      string `json:"car_license"`
	CarEngine       string `json:"car_engine"`
	AppointmentDate string `json:"appointment_date"`
	MechanicID      uint   `json:"mechanic_id"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date"`
	MechanicID      *uint   `json:"mechanic_id"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"field":      fieldErr.Field,
			"message":    fieldErr.Message,
		})

	case httperr.IsBusiness(err, domain.CodeMechanicFullyBooked):
		httperr.BadRequest(c, domain.CodeMechanicFullyBooked,
			"Mechanic is fully booked for the selected date.")

	case httperr.IsBusiness(err, domain.CodeDuplicateClientBooking):
		httperr.BadRequest(c, domain.CodeDuplicateClientBooking,
			"You have already booked an appointment on this date.")

	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")

	default:
		httperr.Internal(c, "store_error", "Something went wrong. Please try again.")
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) *uint {
	id := c.MustGet(middleware.ContextUserID).(uint)
	return &id
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
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
		ActorID:         actorID(c),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateAppointmentInput{
		ID:              id,
		AppointmentDate: req.AppointmentDate,
		MechanicID:      req.MechanicID,
		ActorID:         actorID(c),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorID(c)); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
