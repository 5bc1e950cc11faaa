package users

import (
	"errors"
	"net/http"
	"strconv"

	"family-care/internal/platform/httpjson"
	"family-care/internal/platform/logger"
	"family-care/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

type RouteOptions struct {
	// Tokens puede ser nil: el login responde sin token (modo dev).
	Tokens auth.TokenIssuer

	// LoginMiddlewares se aplican solo a POST /login (rate limit).
	LoginMiddlewares []func(http.Handler) http.Handler

	Logger logger.Logger
}

// RegisterRoutes monta /register y /login; r ya está en el prefijo /auth.
func RegisterRoutes(r chi.Router, svc *Service, opts RouteOptions) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r.Post("/register", registerHandler(svc, log))
	r.With(opts.LoginMiddlewares...).Post("/login", loginHandler(svc, opts.Tokens, log))
}

// RegisterAdminRoutes monta el listado y baja de usuarios; r ya está en /admin
// y protegido por rol.
func RegisterAdminRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Get("/users", listUsersHandler(svc, log))
	r.Delete("/users/{id}", deleteUserHandler(svc, log))
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userEnvelope struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token,omitempty"`
}

func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpjson.Message(w, http.StatusBadRequest, err.Error())
				return
			}
			log.Error("register failed", map[string]any{"err": err})
			httpjson.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpjson.Write(w, http.StatusCreated, userEnvelope{Message: "User registered", User: u})
	}
}

func loginHandler(svc *Service, tokens auth.TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				httpjson.Message(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Error("login failed", map[string]any{"err": err})
			httpjson.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		resp := userEnvelope{Message: "Login successful", User: u}
		if tokens != nil {
			tok, err := tokens.Issue(r.Context(), auth.Claims{
				UserID: strconv.FormatInt(u.ID, 10),
				Email:  u.Email,
				Role:   u.Role,
			})
			if err != nil {
				log.Error("issue token failed", map[string]any{"err": err, "user_id": u.ID})
				httpjson.Message(w, http.StatusInternalServerError, "internal error")
				return
			}
			resp.Token = tok
		}

		httpjson.Write(w, http.StatusOK, resp)
	}
}

func listUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list users failed", map[string]any{"err": err})
			httpjson.Message(w, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []User{}
		}
		httpjson.Write(w, http.StatusOK, items)
	}
}

func deleteUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpjson.ParseID(r, "id")
		if err != nil {
			httpjson.Message(w, http.StatusBadRequest, "invalid id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			log.Error("delete user failed", map[string]any{"err": err})
			httpjson.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpjson.Message(w, http.StatusOK, "Deleted")
	}
}
