package router

import (
	"log/slog"
	"net/http"

	"propertyHub/internal/catalog"
	"propertyHub/internal/dashboard"
	"propertyHub/internal/handlers"
	"propertyHub/internal/session"
	"propertyHub/internal/submission"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Deps struct {
	Catalog   *catalog.Catalog
	Gate      *session.Gate
	Submitter *submission.Submitter
	Dashboard *dashboard.Dashboard
	JWTSecret []byte
	Logger    *slog.Logger
}

func New(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Dashboard == nil {
		deps.Dashboard = dashboard.New(deps.Catalog, deps.Logger)
	}

	router := mux.NewRouter()
	router.Use(handlers.LoggerMiddleware(deps.Logger))

	admin := func(h http.Handler) http.Handler {
		return handlers.AuthorizationMiddleware(h, deps.Gate, deps.JWTSecret)
	}

	router.Handle(`/properties`, handlers.SearchHandler(deps.Catalog)).Methods(`GET`)
	router.Handle(`/properties/featured`, handlers.FeaturedHandler(deps.Catalog)).Methods(`GET`)
	router.Handle(`/properties/submit`, handlers.SubmitPropertyHandler(deps.Submitter)).Methods(`POST`)
	router.Handle(`/properties/submit/validate`, handlers.ValidateStepHandler()).Methods(`POST`)
	router.Handle(`/properties/{id}`, handlers.PropertyHandler(deps.Catalog)).Methods(`GET`)
	router.Handle(`/properties/{id}/contact`, handlers.ContactHandler(deps.Submitter, deps.Catalog)).Methods(`POST`)
	router.Handle(`/locations`, handlers.LocationsHandler(deps.Catalog)).Methods(`GET`)
	router.HandleFunc(`/amenities`, handlers.AmenitiesHandler).Methods(`GET`)

	router.Handle(`/admin/login`, handlers.LoginHandler(deps.Gate, deps.JWTSecret)).Methods(`POST`)
	router.Handle(`/admin/session`, handlers.SessionStatusHandler(deps.Gate)).Methods(`GET`)
	router.Handle(`/admin/logout`, admin(handlers.LogoutHandler(deps.Gate))).Methods(`POST`)
	router.Handle(`/admin/extend`, admin(handlers.ExtendSessionHandler(deps.Gate))).Methods(`POST`)
	router.Handle(`/admin/dashboard`, admin(handlers.DashboardHandler(deps.Dashboard))).Methods(`GET`)
	router.Handle(`/admin/properties/{id}/{action:approve|reject|delete}`, admin(handlers.ModerationHandler(deps.Dashboard, deps.Catalog))).Methods(`POST`)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{`*`},
		AllowedMethods: []string{`GET`, `POST`, `OPTIONS`},
		AllowedHeaders: []string{`Content-Type`, `Authorization`, `X-Trace-ID`},
	}).Handler(router)

	return handler
}
