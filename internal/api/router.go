package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clinivet/gateway/internal/api/handler"
	"github.com/clinivet/gateway/internal/api/middleware"
	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

// RouterDeps carries everything the HTTP surface needs. The router wires,
// it does not construct.
type RouterDeps struct {
	Log           zerolog.Logger
	SessionSecret string
	Sessions      ports.SessionStore
	Clinic        ports.ClinicAPI
	Auth          ports.AuthService
	Auditor       middleware.Auditor

	// Readiness probe inputs.
	Redis          *redis.Client
	BackendBaseURL string
	BackendClient  *http.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("vetgate"))
	e.Use(middleware.Session(deps.SessionSecret, deps.Sessions))

	gate := middleware.NewGate(deps.Auditor)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	vetHandler := handler.NewVetHandler(deps.Clinic)
	secretaryHandler := handler.NewSecretaryHandler(deps.Clinic)
	clientHandler := handler.NewClientHandler(deps.Clinic)
	adminHandler := handler.NewAdminHandler(deps.Clinic)

	// --- Root: always redirects, never renders ---
	e.GET("/", gate.Root)

	// --- Auth routes ---
	e.GET("/auth/login", authHandler.LoginScreen, gate.Login())
	e.POST("/auth/login", authHandler.Login, gate.Login())
	e.POST("/auth/logout", authHandler.Logout)

	// --- Veterinarian area ---
	vet := e.Group("/veterinario", gate.Protect(domain.RoleVeterinarian))
	vet.GET("/inicio", vetHandler.Inicio)
	vet.GET("/citas", vetHandler.Citas)
	vet.GET("/pacientes", vetHandler.Pacientes)
	vet.GET("/pacientes/:id", vetHandler.Paciente)
	vet.GET("/pacientes/:id/historia", vetHandler.Historia)
	vet.GET("/vacunas", vetHandler.Vacunas)
	vet.GET("/desparasitaciones", vetHandler.Desparasitaciones)

	// --- Secretary area ---
	sec := e.Group("/secretario", gate.Protect(domain.RoleSecretary))
	sec.GET("/inicio", secretaryHandler.Inicio)
	sec.GET("/citas", secretaryHandler.Citas)
	sec.GET("/facturacion", secretaryHandler.Facturacion)
	sec.GET("/inventario", secretaryHandler.Inventario)

	// --- Pet-owner area ---
	cli := e.Group("/cliente", gate.Protect(domain.RoleClient))
	cli.GET("/inicio", clientHandler.Inicio)
	cli.GET("/mascotas", clientHandler.Mascotas)
	cli.GET("/citas", clientHandler.Citas)

	// --- Admin area ---
	adm := e.Group("/admin", gate.Protect(domain.RoleAdmin))
	adm.GET("/inicio", adminHandler.Inicio)
	adm.GET("/reportes", adminHandler.Reportes)

	// User administration lives outside the /admin prefix but is admin-only.
	e.GET("/usuarios", adminHandler.Usuarios, gate.Protect(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.BackendBaseURL, deps.BackendClient)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
