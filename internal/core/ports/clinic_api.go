package ports

import (
	"context"

	"github.com/clinivet/gateway/internal/core/domain"
)

// ClinicAPI is the typed surface of the clinic REST backend. Every call
// carries the session through ctx; the shared HTTP client attaches the
// bearer token at send time. Business failures surface as
// *backend.RequestFailedError, transport failures as *backend.TransportError.
type ClinicAPI interface {
	// Login exchanges credentials for a bearer token and the user identity.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Veterinarian screens.
	TodayAppointments(ctx context.Context) ([]Appointment, error)
	Appointments(ctx context.Context) ([]Appointment, error)
	Patients(ctx context.Context) ([]Patient, error)
	Patient(ctx context.Context, id string) (*Patient, error)
	ClinicalHistory(ctx context.Context, patientID string) ([]ClinicalRecord, error)
	Vaccinations(ctx context.Context) ([]Vaccination, error)
	Dewormings(ctx context.Context) ([]Deworming, error)

	// Secretary screens.
	Inventory(ctx context.Context) ([]InventoryItem, error)
	Invoices(ctx context.Context) ([]Invoice, error)

	// Client screens; the backend scopes both by the bearer token.
	MyPets(ctx context.Context) ([]Patient, error)
	MyAppointments(ctx context.Context) ([]Appointment, error)

	// Admin screens.
	Users(ctx context.Context) ([]domain.User, error)
	DashboardReport(ctx context.Context) (*ReportSummary, error)
}
