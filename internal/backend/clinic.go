package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

// TransportError reports a failure to obtain a usable envelope from the
// backend: a network error, or an HTTP status outside 2xx. The backend
// reserves HTTP error codes for transport/framework failures, so these are
// never business outcomes.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: backend returned HTTP %d", e.Op, e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ClinicClient implements ports.ClinicAPI over the clinic REST backend.
// All calls flow through the envelope chokepoint in Decode.
type ClinicClient struct {
	base string
	http *http.Client
}

var _ ports.ClinicAPI = (*ClinicClient)(nil)

func NewClinicClient(baseURL string, httpClient *http.Client) *ClinicClient {
	return &ClinicClient{base: baseURL, http: httpClient}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user identity.
// A business rejection (e.g. "Credenciales inválidas") surfaces as a
// *RequestFailedError carrying the backend's message.
func (c *ClinicClient) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	data, err := postJSON[loginData](ctx, c, "login", "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}
	if data.Token == "" || data.User == nil {
		return "", nil, fmt.Errorf("login: %w", domain.ErrIncompleteSession)
	}
	return data.Token, data.User, nil
}

func (c *ClinicClient) TodayAppointments(ctx context.Context) ([]ports.Appointment, error) {
	return getJSON[[]ports.Appointment](ctx, c, "today appointments", "/appointments/today")
}

func (c *ClinicClient) Appointments(ctx context.Context) ([]ports.Appointment, error) {
	return getJSON[[]ports.Appointment](ctx, c, "appointments", "/appointments")
}

func (c *ClinicClient) Patients(ctx context.Context) ([]ports.Patient, error) {
	return getJSON[[]ports.Patient](ctx, c, "patients", "/patients")
}

func (c *ClinicClient) Patient(ctx context.Context, id string) (*ports.Patient, error) {
	return getJSON[*ports.Patient](ctx, c, "patient", "/patients/"+id)
}

func (c *ClinicClient) ClinicalHistory(ctx context.Context, patientID string) ([]ports.ClinicalRecord, error) {
	return getJSON[[]ports.ClinicalRecord](ctx, c, "clinical history", "/patients/"+patientID+"/history")
}

func (c *ClinicClient) Vaccinations(ctx context.Context) ([]ports.Vaccination, error) {
	return getJSON[[]ports.Vaccination](ctx, c, "vaccinations", "/vaccinations")
}

func (c *ClinicClient) Dewormings(ctx context.Context) ([]ports.Deworming, error) {
	return getJSON[[]ports.Deworming](ctx, c, "dewormings", "/dewormings")
}

func (c *ClinicClient) Inventory(ctx context.Context) ([]ports.InventoryItem, error) {
	return getJSON[[]ports.InventoryItem](ctx, c, "inventory", "/inventory")
}

func (c *ClinicClient) Invoices(ctx context.Context) ([]ports.Invoice, error) {
	return getJSON[[]ports.Invoice](ctx, c, "invoices", "/invoices")
}

func (c *ClinicClient) MyPets(ctx context.Context) ([]ports.Patient, error) {
	return getJSON[[]ports.Patient](ctx, c, "my pets", "/clients/me/pets")
}

func (c *ClinicClient) MyAppointments(ctx context.Context) ([]ports.Appointment, error) {
	return getJSON[[]ports.Appointment](ctx, c, "my appointments", "/clients/me/appointments")
}

func (c *ClinicClient) Users(ctx context.Context) ([]domain.User, error) {
	return getJSON[[]domain.User](ctx, c, "users", "/users")
}

func (c *ClinicClient) DashboardReport(ctx context.Context) (*ports.ReportSummary, error) {
	return getJSON[*ports.ReportSummary](ctx, c, "dashboard report", "/reports/dashboard")
}

func getJSON[T any](ctx context.Context, c *ClinicClient, op, path string) (T, error) {
	var zero T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return zero, fmt.Errorf("%s: build request: %w", op, err)
	}
	return do[T](c, op, req)
}

func postJSON[T any](ctx context.Context, c *ClinicClient, op, path string, payload any) (T, error) {
	var zero T
	body, err := json.Marshal(payload)
	if err != nil {
		return zero, fmt.Errorf("%s: encode request: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("%s: build request: %w", op, err)
	}
	return do[T](c, op, req)
}

func do[T any](c *ClinicClient, op string, req *http.Request) (T, error) {
	var zero T

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &TransportError{Op: op, Status: resp.StatusCode}
	}
	return Decode[T](resp.Body)
}
