package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"campusnavigator/config"
	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/adapters/push"
	"campusnavigator/internal/delivery/http/controllers"
	"campusnavigator/internal/delivery/http/middleware"
	"campusnavigator/internal/session"
	"campusnavigator/internal/telemetry"
	"campusnavigator/internal/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	shutdownTelemetry := telemetry.Setup("campus-navigator")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	api := campus.NewClient(cfg.APIBaseURL, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   15 * time.Second,
	})
	dialer := push.NewDialer(cfg.PushURL, logger)
	sessions := session.NewManager(api, dialer, logger)

	rooms := views.NewRooms(api)
	events := views.NewEvents(api)
	faculty := views.NewFaculty(api)
	resources := views.NewResources(api)
	dashboard := views.NewDashboard(api)

	mux := controllers.NewRouter(controllers.Controllers{
		Auth:      controllers.NewAuthController(logger, sessions),
		Rooms:     controllers.NewRoomsController(logger, rooms),
		Events:    controllers.NewEventsController(logger, events),
		Faculty:   controllers.NewFacultyController(logger, faculty),
		Resources: controllers.NewResourcesController(logger, resources),
		Dashboard: controllers.NewDashboardController(logger, dashboard),
		Streams: &controllers.StreamsController{
			Logger:    logger,
			Rooms:     rooms,
			Events:    events,
			Faculty:   faculty,
			Resources: resources,
			Dashboard: dashboard,
		},
	}, sessions, logger)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		ReadTimeout: 10 * time.Second,
		// No WriteTimeout: the live-refresh streams hold their
		// responses open indefinitely.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("campus navigator listening", "addr", server.Addr, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	sessions.Close()
}
