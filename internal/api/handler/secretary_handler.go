package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/core/ports"
)

// SecretaryHandler serves the secretary screens: appointment book,
// billing and inventory.
type SecretaryHandler struct {
	clinic ports.ClinicAPI
}

func NewSecretaryHandler(clinic ports.ClinicAPI) *SecretaryHandler {
	return &SecretaryHandler{clinic: clinic}
}

type secretaryDashboardResponse struct {
	TodayAppointments []ports.Appointment   `json:"todayAppointments"`
	Inventory         []ports.InventoryItem `json:"inventory"`
}

// Inicio serves GET /secretario/inicio.
func (h *SecretaryHandler) Inicio(c echo.Context) error {
	ctx := c.Request().Context()

	today, err := h.clinic.TodayAppointments(ctx)
	if err != nil {
		return err
	}
	inventory, err := h.clinic.Inventory(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, secretaryDashboardResponse{
		TodayAppointments: today,
		Inventory:         inventory,
	})
}

// Citas serves GET /secretario/citas.
func (h *SecretaryHandler) Citas(c echo.Context) error {
	appointments, err := h.clinic.Appointments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Facturacion serves GET /secretario/facturacion.
func (h *SecretaryHandler) Facturacion(c echo.Context) error {
	invoices, err := h.clinic.Invoices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Inventario serves GET /secretario/inventario.
func (h *SecretaryHandler) Inventario(c echo.Context) error {
	items, err := h.clinic.Inventory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
