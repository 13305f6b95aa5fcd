package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"triageboard/internal/charts"
	"triageboard/internal/controller"
	"triageboard/internal/gateway"
	"triageboard/internal/middleware"
	"triageboard/internal/notify"
	"triageboard/internal/surface"
	"triageboard/internal/utils"
	"triageboard/internal/view"
)

const (
	envAddr       = "TRIAGEBOARD_ADDR"
	envAPIBase    = "TRIAGEBOARD_API_BASE"
	envRefreshSec = "TRIAGEBOARD_REFRESH_SECONDS"
	envLogFile    = "TRIAGEBOARD_LOG"
	envUseTLS     = "TRIAGEBOARD_USE_TLS"
	envTLSCert    = "TRIAGEBOARD_TLS_CERT"
	envTLSKey     = "TRIAGEBOARD_TLS_KEY"
)

type App struct {
	ctl         *controller.Controller
	hub         *middleware.Hub
	rateLimiter *middleware.RateLimiter
	logger      *utils.Logger
	tlsEnabled  bool
	tlsCertPath string
	tlsKeyPath  string
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false
	}
	return parsed
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func buildApp(apiBase string, logger *utils.Logger) *App {
	app := &App{
		hub:         middleware.NewHub(logger),
		rateLimiter: middleware.NewRateLimiter(rate.Every(time.Minute/300), 20),
		logger:      logger,
		tlsEnabled:  envBool(envUseTLS),
		tlsCertPath: os.Getenv(envTLSCert),
		tlsKeyPath:  os.Getenv(envTLSKey),
	}

	bridge := newHubBridge(app.hub)
	surfaces := surface.NewRegistry(bridge, controller.SurfaceIDs()...)
	views := view.NewRouter(
		view.SectionDashboard,
		view.SectionPatients,
		view.SectionQueue,
		view.SectionSimulation,
	)
	views.OnShow(bridge.SectionShown)

	app.ctl = controller.New(gateway.NewClient(apiBase), controller.Deps{
		Views:    views,
		Charts:   charts.NewAdapter(bridge.PriorityChart(), bridge.ComparisonChart()),
		Notes:    notify.NewService(bridge),
		Surfaces: surfaces,
		Form:     bridge,
		Log:      logger,
	}, controller.Config{
		RefreshInterval: envSeconds(envRefreshSec, 30*time.Second),
	})
	return app
}

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.NewLogger(os.Getenv(envLogFile))
	defer logger.Close()

	app := buildApp(envOr(envAPIBase, "http://localhost:8000/api"), logger)

	go app.hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.ctl.Run(ctx)

	r := setupRouter(app)

	srv := &http.Server{
		Addr:           envOr(envAddr, ":8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if app.tlsEnabled {
		if app.tlsCertPath == "" || app.tlsKeyPath == "" {
			log.Fatalf("%s is enabled but %s or %s not provided", envUseTLS, envTLSCert, envTLSKey)
		}
		go func() {
			log.Printf("Starting HTTPS server on %s", srv.Addr)
			if err := srv.ListenAndServeTLS(app.tlsCertPath, app.tlsKeyPath); err != nil && err != http.ErrServerClosed {
				log.Fatalf("HTTPS server failed to start: %v", err)
			}
		}()
	} else {
		go func() {
			log.Printf("Starting server on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Server failed to start: %v", err)
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	cancel()
	app.rateLimiter.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
