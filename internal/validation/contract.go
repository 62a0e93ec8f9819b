package validation

import (
	"github.com/BruksfildServices01/garage-scheduler/internal/dates"
)

// One declarative rule table shared by the server-side admission path
// and any booking form that wants to mirror it
// (GET /api/public/validation/appointment).
// Rules run in order; the first violation is surfaced verbatim.

type AppointmentForm struct {
	ClientName      string
	ClientPhone     string
	CarColor        string
	CarLicense      string
	CarEngine       string
	AppointmentDate string
	MechanicID      uint
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

type Rule struct {
	Field   string `json:"field"`
	Name    string `json:"rule"`
	Message string `json:"message"`

	check func(AppointmentForm) bool
}

func required(field, label string, get func(AppointmentForm) string) Rule {
	return Rule{
		Field:   field,
		Name:    "required",
		Message: label + " is required",
		check:   func(f AppointmentForm) bool { return get(f) != "" },
	}
}

var appointmentRules = []Rule{
	required("client_name", "Client name", func(f AppointmentForm) string { return f.ClientName }),
	required("client_phone", "Client phone", func(f AppointmentForm) string { return f.ClientPhone }),
	required("car_color", "Car color", func(f AppointmentForm) string { return f.CarColor }),
	required("car_license", "Car license", func(f AppointmentForm) string { return f.CarLicense }),
	required("car_engine", "Car engine", func(f AppointmentForm) string { return f.CarEngine }),
	{
		Field:   "appointment_date",
		Name:    "date",
		Message: "Appointment date must be a valid date (YYYY-MM-DD)",
		check: func(f AppointmentForm) bool {
			if f.AppointmentDate == "" {
				return false
			}
			_, err := dates.Parse(f.AppointmentDate)
			return err == nil
		},
	},
	{
		Field:   "mechanic_id",
		Name:    "positive",
		Message: "Mechanic is required",
		check:   func(f AppointmentForm) bool { return f.MechanicID > 0 },
	},
}

// AppointmentRules exposes the rule table for the presentation layer.
func AppointmentRules() []Rule {
	out := make([]Rule, len(appointmentRules))
	copy(out, appointmentRules)
	return out
}

// Violation builds the FieldError for the named field from its rule,
// so partial checks outside CheckAppointment surface the same message.
func Violation(field string) *FieldError {
	for _, r := range appointmentRules {
		if r.Field == field {
			return &FieldError{Field: r.Field, Message: r.Message}
		}
	}
	return &FieldError{Field: field, Message: field + " is invalid"}
}

// CheckAppointment returns the first violated rule as a *FieldError,
// or nil when the form passes.
func CheckAppointment(f AppointmentForm) error {
	for _, r := range appointmentRules {
		if !r.check(f) {
			return &FieldError{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}
