package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/controller"
	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/middleware"
	"github.com/RiyadTangil/masjid-directory/internal/commons"
)

func New(
	masjids *controller.MasjidController,
	pages *controller.PagesController,
	log *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[struct{}]("Method not allowed"))
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, commons.MessageResponse("ok"))
	})

	r.Get("/api/masjids", masjids.List)
	r.Post("/api/masjids", masjids.Create)

	r.Get("/", pages.Index)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
