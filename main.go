package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	auth "Airframe/internal/auth"
	batch "Airframe/internal/calc/premium/batch"
	importer "Airframe/internal/calc/premium/importer"
	recommend "Airframe/internal/calc/recommend"
	report "Airframe/internal/calc/report"
	skeleton "Airframe/internal/calc/skeleton"
	config "Airframe/internal/config"
	logger "Airframe/internal/logger"
	metrics "Airframe/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg *config.Config, l *zap.Logger) {
	authEnv := &auth.Authenv{
		JWTkey:       []byte(cfg.Auth.TokenKey),
		Login:        cfg.Auth.OperatorLogin,
		PasswordHash: []byte(cfg.Auth.OperatorPasswordHash),
		TokenTTL:     cfg.Auth.TokenTTL,
		SecureCookie: cfg.Server.TLSCert != "",
		Log:          l.Named("auth"),
	}
	if cfg.Auth.OperatorPasswordHash == "" {
		l.Warn("AUTH_OPERATOR_PASSWORD_HASH is not set, premium tools are unreachable")
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	mux.Use(logger.Middleware(l.Named("http")))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")
	mux.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")

	recommendH := &recommend.Handler{Log: l.Named("recommend")}
	skeletonH := &skeleton.Handler{Log: l.Named("skeleton")}

	api.HandleFunc("/tools/missions", metrics.Instrument("missions", recommendH.Missions)).Methods("GET")
	api.HandleFunc("/tools/recommend/calc", metrics.Instrument("recommend", recommendH.Calc)).Methods("POST")
	api.HandleFunc("/tools/skeleton/calc", metrics.Instrument("skeleton", skeletonH.Calc)).Methods("POST")
	api.HandleFunc("/tools/skeleton/svg", metrics.Instrument("skeleton_svg", skeletonH.SVG)).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	reportH := &report.Handler{Log: l.Named("report")}
	batchH := &batch.Handler{Log: l.Named("batch")}
	importerH := &importer.Handler{Log: l.Named("importer")}

	secureApi.HandleFunc("/tools/report/pdf", metrics.Instrument("report", reportH.Generate)).Methods("POST")
	secureApi.HandleFunc("/tools/batch/recommend", metrics.Instrument("batch", batchH.Recommend)).Methods("POST")
	secureApi.HandleFunc("/tools/import/recommend", metrics.Instrument("import", importerH.Recommend)).Methods("POST")
	secureApi.HandleFunc("/tools/export/recommend", metrics.Instrument("export", importerH.Export)).Methods("POST")

	if cfg.Static.Dir != "" {
		mux.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Static.Dir)))
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer l.Sync()

	mux := mux.NewRouter()
	HandleList(mux, cfg, l)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Info("starting server", zap.String("addr", server.Addr), zap.Bool("tls", cfg.Server.TLSCert != ""))
		var err error
		if cfg.Server.TLSCert != "" {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	l.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error("graceful shutdown failed", zap.Error(err))
	}
	wg.Wait()
	l.Info("server stopped")
}
