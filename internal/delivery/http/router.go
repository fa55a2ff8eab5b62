package http

import (
	"net/http"

	"maternacare/internal/delivery/http/handler"
	"maternacare/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	pregnancyHandler    *handler.PregnancyHandler
	appointmentHandler  *handler.AppointmentHandler
	educationHandler    *handler.EducationHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	adminHandler        *handler.AdminHandler
	clinicHandler       *handler.ClinicHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	pregnancyHandler *handler.PregnancyHandler,
	appointmentHandler *handler.AppointmentHandler,
	educationHandler *handler.EducationHandler,
	messageHandler *handler.MessageHandler,
	notificationHandler *handler.NotificationHandler,
	adminHandler *handler.AdminHandler,
	clinicHandler *handler.ClinicHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		pregnancyHandler:    pregnancyHandler,
		appointmentHandler:  appointmentHandler,
		educationHandler:    educationHandler,
		messageHandler:      messageHandler,
		notificationHandler: notificationHandler,
		adminHandler:        adminHandler,
		clinicHandler:       clinicHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/session", r.authHandler.Session).Methods(http.MethodGet)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Public directory and education reads
	api.HandleFunc("/clinics", r.clinicHandler.ListClinics).Methods(http.MethodGet)
	api.HandleFunc("/education", r.educationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/education/{id}", r.educationHandler.Get).Methods(http.MethodGet)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/profile", r.authHandler.UpdateProfile).Methods(http.MethodPut)

	protected.HandleFunc("/pregnancy/{motherId}", r.pregnancyHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pregnancy/{motherId}/measurement", r.pregnancyHandler.AddMeasurement).Methods(http.MethodPost)

	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/education", r.educationHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/education/{id}", r.educationHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/education/{id}", r.educationHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/messages", r.messageHandler.Send).Methods(http.MethodPost)
	protected.HandleFunc("/messages/{otherUserId}", r.messageHandler.ListWith).Methods(http.MethodGet)
	protected.HandleFunc("/conversations", r.messageHandler.Conversations).Methods(http.MethodGet)

	protected.HandleFunc("/notifications", r.notificationHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPut)

	// Clinic routes (protected - clinic only)
	clinic := api.PathPrefix("/clinic").Subrouter()
	clinic.Use(r.authMiddleware.Authenticate)
	clinic.Use(middleware.RequireClinic)
	clinic.HandleFunc("/patients", r.clinicHandler.ListPatients).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/create", r.adminHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/pending-clinics", r.adminHandler.ListPendingClinics).Methods(http.MethodGet)
	admin.HandleFunc("/clinics/{id}/approve", r.adminHandler.ApproveClinic).Methods(http.MethodPost)
	admin.HandleFunc("/make-admin", r.adminHandler.MakeAdmin).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
