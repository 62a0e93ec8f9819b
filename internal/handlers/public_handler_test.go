package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	ucBooking "github.com/BruksfildServices01/garage-scheduler/internal/usecase/booking"
)

type publicBookRepo struct {
	stubRepo

	mechs   map[uint]models.Mechanic
	created []models.Appointment
}

func (r *publicBookRepo) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(r)
}

func (r *publicBookRepo) GetMechanic(ctx context.Context, id uint) (*models.Mechanic, error) {
	m, ok := r.mechs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *publicBookRepo) ListMechanics(ctx context.Context) ([]models.Mechanic, error) {
	out := make([]models.Mechanic, 0, len(r.mechs))
	for _, m := range r.mechs {
		out = append(out, m)
	}
	return out, nil
}

func (r *publicBookRepo) CountByMechanicOnDate(ctx context.Context, mechanicID uint, date time.Time, excludeID uint) (int64, error) {
	var count int64
	for _, ap := range r.created {
		if ap.MechanicID == mechanicID && ap.AppointmentDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *publicBookRepo) CountByClientOnDate(ctx context.Context, phone string, date time.Time) (int64, error) {
	var count int64
	for _, ap := range r.created {
		if ap.ClientPhone == phone && ap.AppointmentDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *publicBookRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = uint(len(r.created) + 1)
	r.created = append(r.created, *ap)
	return nil
}

func newPublicRouter(repo domain.Repository) http.Handler {
	createUC := ucBooking.NewCreateAppointment(repo, discardDispatcher())
	h := NewPublicHandler(createUC, repo, nil)

	r := newTestRouter()
	r.POST("/api/public/appointments", h.CreateAppointment)
	r.GET("/api/public/mechanics", h.ListMechanics)
	r.GET("/api/public/validation/appointment", h.ValidationContract)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingPayload(phone string) map[string]any {
	return map[string]any{
		"client_name":      "Ana Souza",
		"client_phone":     phone,
		"car_color":        "red",
		"car_license":      "ABC-1234",
		"car_engine":       "1.6 flex",
		"appointment_date": "2024-06-01",
		"mechanic_id":      1,
	}
}

func TestPublicCreate_Admitted(t *testing.T) {
	repo := &publicBookRepo{mechs: map[uint]models.Mechanic{
		1: {ID: 1, Name: "Carlos", MaxActiveCars: 2},
	}}
	router := newPublicRouter(repo)

	w := postJSON(t, router, "/api/public/appointments", bookingPayload("555-0001"))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
}

func TestPublicCreate_CapacityMessage(t *testing.T) {
	repo := &publicBookRepo{mechs: map[uint]models.Mechanic{
		1: {ID: 1, Name: "Carlos", MaxActiveCars: 1},
	}}
	router := newPublicRouter(repo)

	if w := postJSON(t, router, "/api/public/appointments", bookingPayload("555-0001")); w.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d", w.Code)
	}

	w := postJSON(t, router, "/api/public/appointments", bookingPayload("555-0002"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Code    string `json:"error_code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Code != "mechanic_fully_booked" {
		t.Fatalf("error_code = %q", body.Code)
	}
	if body.Message != "Mechanic is fully booked for the selected date." {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestPublicCreate_DuplicateClientMessage(t *testing.T) {
	repo := &publicBookRepo{mechs: map[uint]models.Mechanic{
		1: {ID: 1, Name: "Carlos", MaxActiveCars: 5},
	}}
	router := newPublicRouter(repo)

	if w := postJSON(t, router, "/api/public/appointments", bookingPayload("555-0001")); w.Code != http.StatusCreated {
		t.Fatalf("first booking status = %d", w.Code)
	}

	w := postJSON(t, router, "/api/public/appointments", bookingPayload("555-0001"))

	var body struct {
		Code    string `json:"error_code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Code != "duplicate_client_booking" {
		t.Fatalf("error_code = %q", body.Code)
	}
	if body.Message != "You have already booked an appointment on this date." {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestPublicCreate_ValidationShape(t *testing.T) {
	router := newPublicRouter(&publicBookRepo{})

	payload := bookingPayload("555-0001")
	payload["car_license"] = ""
	w := postJSON(t, router, "/api/public/appointments", payload)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Code    string `json:"error_code"`
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Code != "validation_failed" || body.Field != "car_license" {
		t.Fatalf("body = %+v", body)
	}
}

func TestPublicListMechanics(t *testing.T) {
	repo := &publicBookRepo{mechs: map[uint]models.Mechanic{
		1: {ID: 1, Name: "Carlos", MaxActiveCars: 2},
	}}
	router := newPublicRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/public/mechanics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Data []struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Total != 1 || len(body.Data) != 1 || body.Data[0].Name != "Carlos" {
		t.Fatalf("body = %+v", body)
	}
}

func TestPublicValidationContract(t *testing.T) {
	router := newPublicRouter(&publicBookRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/public/validation/appointment", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Data []struct {
			Field   string `json:"field"`
			Rule    string `json:"rule"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Data) != 7 {
		t.Fatalf("rules = %d, want 7", len(body.Data))
	}
	for _, r := range body.Data {
		if r.Field == "" || r.Rule == "" || r.Message == "" {
			t.Fatalf("incomplete rule: %+v", r)
		}
	}
}
