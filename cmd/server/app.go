package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/config"
	"github.com/akeray/akeray-api/internal/handlers"
	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/services"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	db        *gorm.DB
	jwtSecret string
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg config.Config) *App {
	app := &App{
		mux:       http.NewServeMux(),
		db:        db,
		jwtSecret: cfg.JWTSecret,
	}
	app.setupRoutes(cfg)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Apply global middleware: attach the bearer identity when present.
	auth.Middleware(a.mux, a.jwtSecret).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes(cfg config.Config) {
	propertySvc := services.NewPropertyService(a.db)

	ah := handlers.NewAuthHandler(a.db, cfg.JWTSecret, cfg.TokenExpiry)
	ph := handlers.NewPropertyHandler(propertySvc, cfg.UploadDir)
	uh := handlers.NewUnitHandler(a.db)
	oh := handlers.NewOwnerHandler(a.db)
	th := handlers.NewTenantHandler(a.db)
	lh := handlers.NewLeaseHandler(a.db)
	eh := handlers.NewExportHandler(a.db, propertySvc)

	// ─────────────────────────────────────────────────────────────────────────
	// Public routes (no auth required)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.HandleFunc("POST /auth/login", ah.Login)
	a.mux.HandleFunc("POST /auth/signup", ah.Signup)
	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /healthz", a.healthz)

	// ─────────────────────────────────────────────────────────────────────────
	// Properties (admins and owners manage, any authenticated actor reads)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("POST /properties",
		a.requireRoles(http.HandlerFunc(ph.Create), models.RoleAdmin, models.RoleOwner))
	a.mux.Handle("GET /properties",
		a.requireAuth(http.HandlerFunc(ph.List)))
	a.mux.Handle("GET /properties/stats/overview",
		a.requireAuth(http.HandlerFunc(ph.Stats)))
	a.mux.Handle("GET /properties/owner/{id}",
		a.requireRoles(http.HandlerFunc(ph.ByOwner), models.RoleAdmin, models.RoleOwner))
	a.mux.Handle("GET /properties/{id}",
		a.requireAuth(http.HandlerFunc(ph.Get)))
	a.mux.Handle("PATCH /properties/{id}",
		a.requireRoles(http.HandlerFunc(ph.Update), models.RoleAdmin, models.RoleOwner))
	a.mux.Handle("DELETE /properties/{id}",
		a.requireRoles(http.HandlerFunc(ph.Delete), models.RoleAdmin, models.RoleOwner))

	// Units
	a.mux.Handle("GET /properties/{id}/units",
		a.requireAuth(http.HandlerFunc(uh.ListByProperty)))
	a.mux.Handle("PATCH /units/{id}",
		a.requireRoles(http.HandlerFunc(uh.Update), models.RoleAdmin, models.RoleOwner))

	// ─────────────────────────────────────────────────────────────────────────
	// Owner account review (admin only)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /owners",
		a.requireRoles(http.HandlerFunc(oh.List), models.RoleAdmin))
	a.mux.Handle("POST /owners/{id}/approve",
		a.requireRoles(http.HandlerFunc(oh.Approve), models.RoleAdmin))
	a.mux.Handle("POST /owners/{id}/reject",
		a.requireRoles(http.HandlerFunc(oh.Reject), models.RoleAdmin))
	a.mux.Handle("POST /owners/{id}/verify",
		a.requireRoles(http.HandlerFunc(oh.Verify), models.RoleAdmin))

	// ─────────────────────────────────────────────────────────────────────────
	// Tenants (admin only)
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /tenants",
		a.requireRoles(http.HandlerFunc(th.List), models.RoleAdmin))
	a.mux.Handle("POST /tenants",
		a.requireRoles(http.HandlerFunc(th.Create), models.RoleAdmin))
	a.mux.Handle("GET /tenants/{id}",
		a.requireRoles(http.HandlerFunc(th.Get), models.RoleAdmin))
	a.mux.Handle("PATCH /tenants/{id}",
		a.requireRoles(http.HandlerFunc(th.Update), models.RoleAdmin))
	a.mux.Handle("DELETE /tenants/{id}",
		a.requireRoles(http.HandlerFunc(th.Delete), models.RoleAdmin))

	// ─────────────────────────────────────────────────────────────────────────
	// Leases
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("POST /leases",
		a.requireRoles(http.HandlerFunc(lh.Create), models.RoleAdmin))
	a.mux.Handle("GET /leases",
		a.requireAuth(http.HandlerFunc(lh.List)))
	a.mux.Handle("GET /leases/{id}",
		a.requireAuth(http.HandlerFunc(lh.Get)))

	// ─────────────────────────────────────────────────────────────────────────
	// Document exports
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /export/properties/pdf",
		a.requireAuth(http.HandlerFunc(eh.PropertiesPDF)))
	a.mux.Handle("GET /export/properties/excel",
		a.requireAuth(http.HandlerFunc(eh.PropertiesExcel)))
	a.mux.Handle("GET /export/leases/{id}/pdf",
		a.requireAuth(http.HandlerFunc(eh.LeasePDF)))
	a.mux.Handle("POST /export/invoices/pdf",
		a.requireAuth(http.HandlerFunc(eh.InvoicePDF)))
	a.mux.Handle("POST /export/invoices/print",
		a.requireAuth(http.HandlerFunc(eh.InvoicePrint)))

	// Uploaded property images
	a.mux.Handle("GET /uploads/properties/",
		http.StripPrefix("/uploads/properties/", http.FileServer(http.Dir(cfg.UploadDir))))
}

// ─────────────────────────────────────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────────────────────────────────────

func (a *App) requireAuth(next http.Handler) http.Handler {
	return auth.RequireAuth(next)
}

func (a *App) requireRoles(next http.Handler, roles ...models.Role) http.Handler {
	return auth.RequireRoles(next, roles...)
}

// health reports process liveness.
func (a *App) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// healthz additionally pings the database.
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := a.db.DB()
	if err != nil || sqlDB.PingContext(r.Context()) != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "database_unreachable", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
