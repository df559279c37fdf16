package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"userdir/internal/pkg/logx"
	"userdir/internal/pkg/resp"
)

// Router builds the chi routing table with CORS, request ids, request logging and
// panic recovery applied to every route.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := deps.Config.AllowedOrigins
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/", HandleHealth)
	r.Get("/health", HandleHealth)

	r.Route("/form/user", func(form chi.Router) {
		form.Post("/register", HandleRegister(deps))
		form.Post("/login", HandleLogin(deps))
	})

	r.Route("/user", func(users chi.Router) {
		users.Get("/", HandleListUsers(deps))
		users.Post("/", HandleCreateUser(deps))
		users.Get("/{user_id}", HandleGetUser(deps))
		users.Put("/{user_id}", HandleUpdateUser(deps))
		users.Delete("/{user_id}", HandleDeleteUser(deps))
	})

	return r
}

// HandleHealth reports that the server is up along with the current Unix time.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp.RespondSuccess(w, r, map[string]any{
		"status":    "ok",
		"service":   "userdir",
		"timestamp": time.Now().Unix(),
	})
}
