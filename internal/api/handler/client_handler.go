package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/core/ports"
)

// ClientHandler serves the pet-owner screens. The backend scopes every
// call to the authenticated owner via the bearer token; the gateway adds
// no filtering of its own.
type ClientHandler struct {
	clinic ports.ClinicAPI
}

func NewClientHandler(clinic ports.ClinicAPI) *ClientHandler {
	return &ClientHandler{clinic: clinic}
}

type clientDashboardResponse struct {
	Pets         []ports.Patient     `json:"pets"`
	Appointments []ports.Appointment `json:"appointments"`
}

// Inicio serves GET /cliente/inicio.
func (h *ClientHandler) Inicio(c echo.Context) error {
	ctx := c.Request().Context()

	pets, err := h.clinic.MyPets(ctx)
	if err != nil {
		return err
	}
	appointments, err := h.clinic.MyAppointments(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, clientDashboardResponse{
		Pets:         pets,
		Appointments: appointments,
	})
}

// Mascotas serves GET /cliente/mascotas.
func (h *ClientHandler) Mascotas(c echo.Context) error {
	pets, err := h.clinic.MyPets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pets)
}

// Citas serves GET /cliente/citas.
func (h *ClientHandler) Citas(c echo.Context) error {
	appointments, err := h.clinic.MyAppointments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}
