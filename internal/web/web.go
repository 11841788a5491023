package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type IndexView struct {
	Masjids  []models.MasjidWithBanks
	Selected *models.MasjidWithBanks
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"usd":        formatUSD,
		"formatDate": formatDate,
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Index(w io.Writer, view IndexView) error {
	if err := r.tmpl.ExecuteTemplate(w, "index.html.tmpl", view); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// formatUSD renders a fixed-point amount string like "12000.00" as
// "$12,000.00".
func formatUSD(amount string) string {
	whole, frac, ok := strings.Cut(amount, ".")
	if !ok {
		frac = "00"
	}

	negative := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := "$" + strings.Join(groups, ",") + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}

func formatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006")
}
