package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/core/ports"
)

// AdminHandler serves the administrator screens: reports and user
// administration.
type AdminHandler struct {
	clinic ports.ClinicAPI
}

func NewAdminHandler(clinic ports.ClinicAPI) *AdminHandler {
	return &AdminHandler{clinic: clinic}
}

// Inicio serves GET /admin/inicio, the admin dashboard.
func (h *AdminHandler) Inicio(c echo.Context) error {
	report, err := h.clinic.DashboardReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Usuarios serves GET /usuarios, user administration.
func (h *AdminHandler) Usuarios(c echo.Context) error {
	users, err := h.clinic.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Reportes serves GET /admin/reportes.
func (h *AdminHandler) Reportes(c echo.Context) error {
	report, err := h.clinic.DashboardReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
