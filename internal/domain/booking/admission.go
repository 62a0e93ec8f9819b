package booking

import (
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// ===============================
// Admission rules
// ===============================

// Business error codes raised by the admission checks.
const (
	CodeMechanicFullyBooked    = "mechanic_fully_booked"
	CodeDuplicateClientBooking = "duplicate_client_booking"
)

// AdmitCreate decides whether a new appointment may take the requested
// (mechanic, date) slot. mech is nil when the referenced mechanic does
// not exist, which counts as a capacity failure, same as a full slot.
func AdmitCreate(mech *models.Mechanic, slotCount, clientCount int64) error {
	if mech == nil || slotCount >= int64(mech.MaxActiveCars) {
		return httperr.ErrBusiness(CodeMechanicFullyBooked)
	}
	if clientCount > 0 {
		return httperr.ErrBusiness(CodeDuplicateClientBooking)
	}
	return nil
}

// AdmitReschedule decides whether an existing appointment may move to
// the effective (mechanic, date) slot. otherCount must already exclude
// the appointment being moved. Client uniqueness is not re-checked
// here: the phone is immutable after creation.
func AdmitReschedule(mech *models.Mechanic, otherCount int64) error {
	if mech == nil || otherCount >= int64(mech.MaxActiveCars) {
		return httperr.ErrBusiness(CodeMechanicFullyBooked)
	}
	return nil
}
