package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/pits-server/internal/api/rest/handler"
	"github.com/dtroode/pits-server/internal/api/rest/middleware"
	"github.com/dtroode/pits-server/internal/logger"
	"github.com/dtroode/pits-server/internal/metrics"
	"github.com/dtroode/pits-server/internal/model"
)

// Router represents the HTTP router of the device console API.
type Router struct {
	authService    handler.AuthService
	deviceService  handler.DeviceService
	userService    handler.UserService
	sessions       middleware.SessionResolver
	contextManager model.ContextManager
	pinger         handler.Pinger
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	authService handler.AuthService,
	deviceService handler.DeviceService,
	userService handler.UserService,
	sessions middleware.SessionResolver,
	contextManager model.ContextManager,
	pinger handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		deviceService:  deviceService,
		userService:    userService,
		sessions:       sessions,
		contextManager: contextManager,
		pinger:         pinger,
		logger:         logger,
	}
}

// Register builds the handler tree. Auth, health and metrics routes are
// public; everything else requires a session.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)

	root := mux.NewRouter()
	root.Use(logging.Handle, metrics.HTTPMetricsMiddleware(metrics.HTTPRequestsTotal, metrics.HTTPRequestDuration))

	root.HandleFunc("/health", handler.NewHealth(r.pinger, r.logger).Check).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.registerAuthRoutes(root)

	protected := root.NewRoute().Subrouter()
	protected.Use(authenticate.Handle)
	r.registerUserRoutes(protected)
	r.registerDeviceRoutes(protected)

	return root
}

func (r *Router) registerAuthRoutes(root *mux.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	root.HandleFunc("/auth", authHandler.AuthURL).Methods(http.MethodGet)
	root.HandleFunc("/auth/{type:[a-z]+}", authHandler.Callback).Methods(http.MethodGet)
}

func (r *Router) registerUserRoutes(s *mux.Router) {
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)
	s.HandleFunc("/me", userHandler.Me).Methods(http.MethodGet)
}

func (r *Router) registerDeviceRoutes(s *mux.Router) {
	deviceHandler := handler.NewDevice(r.deviceService, r.contextManager, r.logger)
	s.HandleFunc("/devices", deviceHandler.List).Methods(http.MethodGet)
	s.HandleFunc("/device/{id}", deviceHandler.Get).Methods(http.MethodGet)
	s.HandleFunc("/device/{id}/owners", deviceHandler.Owners).Methods(http.MethodGet)
	s.HandleFunc("/device/{id}/capture", deviceHandler.Capture).Methods(http.MethodGet)
}
