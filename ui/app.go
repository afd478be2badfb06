package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"artsdash/app"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard web application
type App struct {
	router    *chi.Mux
	dashboard *app.DashboardService
	templates *template.Template
	port      string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new dashboard application
func NewApp(config Config, dashboard *app.DashboardService) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		dashboard: dashboard,
		templates: templates,
		port:      config.Port,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Pages
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/gender", a.handleGender)

	// API endpoints
	a.router.Get("/api/dashboard", a.handleDashboardJSON)
	a.router.Get("/api/charts/{name}", a.handleChartJSON)
	a.router.Get("/api/profile", a.handleProfileJSON)

	// Workbook export
	a.router.Get("/export.xlsx", a.handleExport)

	a.router.Get("/healthz", a.handleHealth)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	log.Printf("Starting survey dashboard server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests and embedding hosts
func (a *App) Router() http.Handler {
	return a.router
}
