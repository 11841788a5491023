package controller

import (
	"bytes"
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
	"github.com/RiyadTangil/masjid-directory/internal/web"
)

type DirectoryService interface {
	DirectoryMasjids(ctx context.Context) ([]models.MasjidWithBanks, error)
	GetMasjid(ctx context.Context, id string) (*models.MasjidWithBanks, error)
}

type PagesController struct {
	service  DirectoryService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewPagesController(service DirectoryService, renderer *web.Renderer, log *zap.Logger) *PagesController {
	return &PagesController{service: service, renderer: renderer, log: log}
}

// Index renders the directory. The selected masjid is the ?masjid= query
// parameter; an unknown id renders the page with nothing selected.
func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	masjids, err := c.service.DirectoryMasjids(r.Context())
	if err != nil {
		c.log.Error("directory page list failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	view := web.IndexView{Masjids: masjids}
	if id := r.URL.Query().Get("masjid"); id != "" {
		selected, err := c.service.GetMasjid(r.Context(), id)
		if err != nil {
			c.log.Error("directory page detail failed", zap.String("id", id), zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		view.Selected = selected
	}

	var buf bytes.Buffer
	if err := c.renderer.Index(&buf, view); err != nil {
		c.log.Error("directory page render failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
