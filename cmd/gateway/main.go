package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	api "github.com/campusworks/faculty-appraisal/internal/api/http"
	"github.com/campusworks/faculty-appraisal/internal/appraisal"
	auth "github.com/campusworks/faculty-appraisal/internal/auth/middleware"
	"github.com/campusworks/faculty-appraisal/internal/config"
	"github.com/campusworks/faculty-appraisal/internal/db"
	"github.com/campusworks/faculty-appraisal/internal/eventlog"
	"github.com/campusworks/faculty-appraisal/internal/rbac"
	"github.com/campusworks/faculty-appraisal/internal/storage"
	"github.com/campusworks/faculty-appraisal/pkg/logger"
)

func main() {
	cfg := config.FromEnv()

	logg, err := logger.New(string(cfg.Env))
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = logg.Sync() }()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		logg.Fatal("db open failed", zap.Error(err))
	}

	events := eventlog.NewRepo(dbh)
	store := appraisal.NewSQLStore(dbh, events)

	bs, err := storage.NewFSStore(cfg.EvidenceBasePath)
	if err != nil {
		logg.Fatal("evidence store", zap.Error(err))
	}

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.TokenTTL)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(logg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if err := dbh.PingContext(req.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))

	// Everything below requires a valid token. The stored role wins over the
	// claimed one so a role change takes effect without reissuing tokens.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh, cfg.Env == config.EnvDev))

		pr.Route("/submissions", func(sr chi.Router) {
			sr.With(rbac.Require("submission:create")).Post("/", api.SaveSubmissionHandler(store))
			sr.With(rbac.RequireAny("submission:view-own", "submission:view-all")).
				Get("/", api.ListSubmissionsHandler(store))
			sr.With(rbac.Require("submission:view-own")).
				Get("/latest-draft", api.LatestDraftHandler(store))

			sr.Route("/{submissionID}", func(ir chi.Router) {
				ir.With(rbac.RequireAny("submission:view-own", "submission:view-all")).
					Get("/", api.GetSubmissionHandler(store))
				ir.With(rbac.Require("submission:review")).
					Post("/approve", api.ApproveSubmissionHandler(store))
				ir.With(rbac.Require("submission:review")).
					Post("/reject", api.RejectSubmissionHandler(store))
				ir.With(rbac.Require("submission:review")).
					Get("/history", api.SubmissionHistoryHandler(store, events))

				ir.With(rbac.Require("evidence:upload")).
					Post("/evidence", api.UploadEvidenceHandler(store, bs, dbh))
				ir.With(rbac.Require("evidence:view")).
					Get("/evidence", api.ListEvidenceHandler(store, dbh))
				ir.With(rbac.Require("evidence:view")).
					Get("/evidence/{evidenceID}", api.GetEvidenceHandler(store, bs, dbh))
			})
		})

		pr.Route("/users", func(ur chi.Router) {
			ur.With(rbac.Require("users:bulk_upsert")).Post("/bulk", api.BulkUpsertUsersHandler(dbh))
			ur.With(rbac.Require("users:list")).Get("/", api.ListUsersHandler(dbh))
			ur.With(rbac.Require("user:change_password")).
				Post("/change-password", api.ChangePasswordHandler(dbh))
		})
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("gateway listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("serve", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Warn("shutdown", zap.Error(err))
	}
	logg.Info("gateway stopped")
}

func requestLogger(logg *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logg.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
				zap.String("reqid", middleware.GetReqID(r.Context())),
			)
		})
	}
}
