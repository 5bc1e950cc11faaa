package router

import (
	"net/http"
	"time"

	_ "family-care/docs"
	"family-care/internal/adapters/storage"
	mem "family-care/internal/adapters/storage/memory"
	"family-care/internal/domain/family"
	"family-care/internal/domain/feedback"
	"family-care/internal/domain/payments"
	"family-care/internal/domain/pets"
	"family-care/internal/domain/reports"
	"family-care/internal/domain/schedules"
	"family-care/internal/domain/users"
	"family-care/internal/middleware"
	"family-care/internal/platform/httpjson"
	"family-care/internal/platform/logger"
	"family-care/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // puede ser nil: login sin token

	// Opcional: si viene, usa ese store (sqlstore). Si no, in-memory.
	Store *storage.Store

	Logger      logger.Logger
	AdminEmails []string

	// CORSOrigins vacío => "*".
	CORSOrigins []string

	// LoginRateLimit requests/min por IP en /auth/login. <= 0 desactiva.
	LoginRateLimit int

	// TrustProxyHeaders toma la IP de X-Forwarded-For / X-Real-IP. Solo detrás
	// de un proxy propio; si no, la IP es la de la conexión.
	TrustProxyHeaders bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	st := opts.Store
	if st == nil {
		st = mem.NewStore()
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Debug-User-ID", "X-Debug-Role"},
		MaxAge:         300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/api", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Message(w, http.StatusOK, "CORS enabled for all origins!")
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(st.Users, users.Options{AdminEmails: opts.AdminEmails, Logger: log})
	familySvc := family.NewService(st.Family)
	petsSvc := pets.NewService(st.Pets)
	schedulesSvc := schedules.NewService(st.Schedules)
	paymentsSvc := payments.NewService(st.Payments)
	feedbackSvc := feedback.NewService(st.Feedback)
	reportsSvc := reports.NewService(reports.Sources{
		Users:         usersSvc,
		FamilyMembers: familySvc,
		Pets:          petsSvc,
		Schedules:     schedulesSvc,
		Payments:      paymentsSvc,
		Feedback:      feedbackSvc,
	})

	var loginLimits []func(http.Handler) http.Handler
	if opts.LoginRateLimit > 0 {
		loginLimits = append(loginLimits, httprate.Limit(
			opts.LoginRateLimit,
			time.Minute,
			// RemoteAddr; chimw.RealIP ya lo reescribió si hay proxy confiable.
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				httpjson.Message(w, http.StatusTooManyRequests, "Too many requests")
			}),
		))
	}

	// Rutas por módulo
	r.Route("/auth", func(r chi.Router) {
		users.RegisterRoutes(r, usersSvc, users.RouteOptions{
			Tokens:           opts.TokenIssuer,
			LoginMiddlewares: loginLimits,
			Logger:           log,
		})
	})

	family.RegisterRoutes(r, familySvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	schedules.RegisterRoutes(r, schedulesSvc, log)
	payments.RegisterRoutes(r, paymentsSvc, log)
	feedback.RegisterRoutes(r, feedbackSvc, log)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		users.RegisterAdminRoutes(r, usersSvc, log)
		reports.RegisterRoutes(r, reportsSvc, log)
	})

	return r
}
