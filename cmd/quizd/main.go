package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/aeroquiz/aeroquiz/internal/api/http"
	"github.com/aeroquiz/aeroquiz/internal/catalog"
	"github.com/aeroquiz/aeroquiz/internal/config"
	"github.com/aeroquiz/aeroquiz/internal/db"
	"github.com/aeroquiz/aeroquiz/internal/quiz"
	"github.com/aeroquiz/aeroquiz/internal/ratelimit"
	"github.com/aeroquiz/aeroquiz/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Catalog ---
	var cat catalog.Store
	if cfg.DBDriver == "static" {
		cat = catalog.Default()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		cat, err = catalog.LoadSQL(ctx, dbh)
		if err != nil {
			log.Fatalf("catalog load failed: %v", err)
		}
	}

	// --- Session tokens ---
	var signer *session.Signer
	if cfg.EnableSessionTokens {
		signer = session.NewSigner(cfg.SessionSecret)
	}

	svc := quiz.NewService(cat, signer, cfg.TimeLimit)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(api.SecureHeaders)

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Use(ratelimit.Middleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
		ar.Get("/quiz", api.QuizHandler(svc))
		ar.Post("/grade", api.GradeHandler(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, catalog=%s, questions=%d)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cat.Size())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
