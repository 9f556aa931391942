package ports

import "time"

// Wire types for the clinic backend. Tags follow the backend's camelCase
// JSON contract; the gateway passes these through to its own callers
// unchanged, so they double as response schemas.

// Appointment is a scheduled visit.
type Appointment struct {
	ID               string    `json:"id"`
	Date             time.Time `json:"date"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	PatientName      string    `json:"patientName"`
	OwnerName        string    `json:"ownerName"`
	VeterinarianName string    `json:"veterinarianName"`
}

// Patient is a registered animal.
type Patient struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	Sex       string     `json:"sex"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Microchip string     `json:"microchip,omitempty"`
	OwnerName string     `json:"ownerName"`
}

// ClinicalRecord is one entry in a patient's clinical history.
type ClinicalRecord struct {
	ID               string    `json:"id"`
	PatientID        string    `json:"patientId"`
	Date             time.Time `json:"date"`
	Diagnosis        string    `json:"diagnosis"`
	Treatment        string    `json:"treatment"`
	Notes            string    `json:"notes,omitempty"`
	VeterinarianName string    `json:"veterinarianName"`
}

// Vaccination records an applied vaccine and its next due date.
type Vaccination struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Vaccine     string     `json:"vaccine"`
	AppliedAt   time.Time  `json:"appliedAt"`
	NextDueAt   *time.Time `json:"nextDueAt,omitempty"`
}

// Deworming records an applied antiparasitic and its next due date.
type Deworming struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patientId"`
	PatientName string     `json:"patientName"`
	Product     string     `json:"product"`
	AppliedAt   time.Time  `json:"appliedAt"`
	NextDueAt   *time.Time `json:"nextDueAt,omitempty"`
}

// InventoryItem is a stocked product.
type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
	MinimumStock int     `json:"minimumStock"`
	UnitPrice    float64 `json:"unitPrice"`
}

// Invoice is a billing document; amounts are computed server-side.
type Invoice struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	ClientName string    `json:"clientName"`
	IssuedAt   time.Time `json:"issuedAt"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
}

// ReportSummary is the admin dashboard aggregate.
type ReportSummary struct {
	AppointmentsToday int     `json:"appointmentsToday"`
	ActivePatients    int     `json:"activePatients"`
	LowStockItems     int     `json:"lowStockItems"`
	VaccinationsDue   int     `json:"vaccinationsDue"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}
