package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/core/ports"
)

// VetHandler serves the veterinarian screens. The gate guarantees every
// request here carries a VETERINARIO session; handlers only fetch and shape
// data.
type VetHandler struct {
	clinic ports.ClinicAPI
}

func NewVetHandler(clinic ports.ClinicAPI) *VetHandler {
	return &VetHandler{clinic: clinic}
}

type vetDashboardResponse struct {
	TodayAppointments []ports.Appointment `json:"todayAppointments"`
	Vaccinations      []ports.Vaccination `json:"vaccinations"`
}

// Inicio serves GET /veterinario/inicio, the veterinarian dashboard.
func (h *VetHandler) Inicio(c echo.Context) error {
	ctx := c.Request().Context()

	today, err := h.clinic.TodayAppointments(ctx)
	if err != nil {
		return err
	}
	vaccinations, err := h.clinic.Vaccinations(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, vetDashboardResponse{
		TodayAppointments: today,
		Vaccinations:      vaccinations,
	})
}

// Citas serves GET /veterinario/citas.
func (h *VetHandler) Citas(c echo.Context) error {
	appointments, err := h.clinic.Appointments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Pacientes serves GET /veterinario/pacientes.
func (h *VetHandler) Pacientes(c echo.Context) error {
	patients, err := h.clinic.Patients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Paciente serves GET /veterinario/pacientes/:id.
func (h *VetHandler) Paciente(c echo.Context) error {
	patient, err := h.clinic.Patient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patient)
}

// Historia serves GET /veterinario/pacientes/:id/historia with the patient's
// clinical history.
func (h *VetHandler) Historia(c echo.Context) error {
	history, err := h.clinic.ClinicalHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}

// Vacunas serves GET /veterinario/vacunas.
func (h *VetHandler) Vacunas(c echo.Context) error {
	vaccinations, err := h.clinic.Vaccinations(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vaccinations)
}

// Desparasitaciones serves GET /veterinario/desparasitaciones.
func (h *VetHandler) Desparasitaciones(c echo.Context) error {
	dewormings, err := h.clinic.Dewormings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dewormings)
}
