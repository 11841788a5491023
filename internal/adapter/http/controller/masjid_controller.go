package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
	"github.com/RiyadTangil/masjid-directory/internal/commons"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type MasjidService interface {
	ListMasjids(ctx context.Context, page, limit int) (commons.Response[[]models.MasjidWithBanks], error)
	CreateMasjid(ctx context.Context, req models.CreateMasjidRequest) (commons.Response[models.Masjid], error)
}

type MasjidController struct {
	service MasjidService
	log     *zap.Logger
}

func NewMasjidController(service MasjidService, log *zap.Logger) *MasjidController {
	return &MasjidController{service: service, log: log}
}

func (c *MasjidController) List(w http.ResponseWriter, r *http.Request) {
	page := intParam(r.URL.Query(), "page", defaultPage)
	limit := intParam(r.URL.Query(), "limit", defaultLimit)

	response, err := c.service.ListMasjids(r.Context(), page, limit)
	if err != nil {
		c.log.Error("list masjids request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[[]models.MasjidWithBanks]("Internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *MasjidController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMasjidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ValidationErrorResponse[models.Masjid]([]commons.FieldError{
			{Path: "body", Message: "Invalid request body"},
		}))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, commons.ValidationErrorResponse[models.Masjid](errs))
		return
	}

	response, err := c.service.CreateMasjid(r.Context(), req)
	if err != nil {
		if len(response.Errors) > 0 {
			writeJSON(w, http.StatusBadRequest, response)
			return
		}
		c.log.Error("create masjid request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, commons.ErrorResponse[models.Masjid]("Internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// intParam coerces a query value permissively: missing, malformed, or
// non-positive values fall back to the default instead of failing the
// request.
func intParam(values url.Values, key string, def int) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
