package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/examdesk/examdesk/internal/api/http"
	auth "github.com/examdesk/examdesk/internal/auth/middleware"
	"github.com/examdesk/examdesk/internal/config"
	"github.com/examdesk/examdesk/internal/db"
	"github.com/examdesk/examdesk/internal/exam"
	"github.com/examdesk/examdesk/internal/rbac"
	"github.com/examdesk/examdesk/internal/result"
	"github.com/examdesk/examdesk/internal/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // optional .env in dev; real env wins
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	userStore := users.NewStore(dbh)
	if cfg.SeedUsers {
		if err := userStore.Seed(ctx); err != nil {
			log.Fatalf("seed users: %v", err)
		}
	}

	examSvc := exam.NewService(exam.NewSQLStore(dbh, cfg.DBDriver))
	resultSvc := result.NewService(result.NewSQLStore(dbh, cfg.DBDriver), exam.NewSQLStore(dbh, cfg.DBDriver), userStore)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, userStore))

	// Protected API (JWT → principal in context → authoritative role → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh, cfg.DevMode))

		pr.With(rbac.Require("exam:create")).
			Post("/exams", api.CreateExamHandler(examSvc))
		pr.With(rbac.Require("exam:view")).
			Get("/exams", api.ListExamsHandler(examSvc))
		pr.With(rbac.Require("exam:view")).
			Get("/exams/{examID}", api.GetExamHandler(examSvc))
		pr.With(rbac.Require("exam:list-own")).
			Get("/exams/teacher/{teacherID}", api.ListTeacherExamsHandler(examSvc))

		pr.With(rbac.Require("result:submit")).
			Post("/results", api.SubmitExamHandler(resultSvc))
		pr.With(rbac.RequireAny("result:view-own", "result:view-all")).
			Get("/results/student/{studentID}", api.ListStudentResultsHandler(resultSvc))
		pr.With(rbac.Require("result:view-all")).
			Get("/results/exam/{examID}", api.ListExamResultsHandler(resultSvc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
