package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/controller"
	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/models"
	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/router"
	"github.com/RiyadTangil/masjid-directory/internal/commons"
	"github.com/RiyadTangil/masjid-directory/internal/web"
)

type stubMasjidService struct {
	listResp   commons.Response[[]models.MasjidWithBanks]
	listErr    error
	createResp commons.Response[models.Masjid]
	createErr  error

	gotPage      int
	gotLimit     int
	createCalled bool
}

func (s *stubMasjidService) ListMasjids(ctx context.Context, page, limit int) (commons.Response[[]models.MasjidWithBanks], error) {
	s.gotPage = page
	s.gotLimit = limit
	return s.listResp, s.listErr
}

func (s *stubMasjidService) CreateMasjid(ctx context.Context, req models.CreateMasjidRequest) (commons.Response[models.Masjid], error) {
	s.createCalled = true
	return s.createResp, s.createErr
}

type stubDirectoryService struct{}

func (stubDirectoryService) DirectoryMasjids(ctx context.Context) ([]models.MasjidWithBanks, error) {
	return []models.MasjidWithBanks{}, nil
}

func (stubDirectoryService) GetMasjid(ctx context.Context, id string) (*models.MasjidWithBanks, error) {
	return nil, nil
}

func newTestServer(t *testing.T, svc *stubMasjidService) http.Handler {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	log := zap.NewNop()
	return router.New(
		controller.NewMasjidController(svc, log),
		controller.NewPagesController(stubDirectoryService{}, renderer, log),
		log,
	)
}

func TestListMasjids(t *testing.T) {
	svc := &stubMasjidService{
		listResp: commons.PagedResponse([]models.MasjidWithBanks{}, commons.NewPagination(25, 1, 10)),
	}
	handler := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/masjids?page=1&limit=10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.gotPage)
	assert.Equal(t, 10, svc.gotLimit)
	assert.JSONEq(t, `{"success":true,"data":[],"pagination":{"total":25,"page":1,"limit":10,"pages":3}}`, rec.Body.String())
}

func TestListMasjidsCoercesPaginationParams(t *testing.T) {
	cases := []struct {
		name  string
		query string
		page  int
		limit int
	}{
		{"missing", "", 1, 10},
		{"malformed", "?page=abc&limit=xyz", 1, 10},
		{"non-positive", "?page=0&limit=-5", 1, 10},
		{"custom", "?page=3&limit=5", 3, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubMasjidService{
				listResp: commons.PagedResponse([]models.MasjidWithBanks{}, commons.NewPagination(0, tc.page, tc.limit)),
			}
			handler := newTestServer(t, svc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/masjids"+tc.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.page, svc.gotPage)
			assert.Equal(t, tc.limit, svc.gotLimit)
		})
	}
}

func TestListMasjidsServiceError(t *testing.T) {
	svc := &stubMasjidService{listErr: errors.New("connection refused")}
	handler := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/masjids", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestCreateMasjid(t *testing.T) {
	svc := &stubMasjidService{
		createResp: commons.SuccessResponse(models.Masjid{ID: "clm9", Name: "Masjid Al-Falah"}),
	}
	handler := newTestServer(t, svc)

	body := `{"name":"Masjid Al-Falah","address":"12 Crescent Road","city":"Boston","state":"MA","zipCode":"02101","country":"USA"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/masjids", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, svc.createCalled)
	assert.Contains(t, rec.Body.String(), `"id":"clm9"`)
}

func TestCreateMasjidMissingRequiredField(t *testing.T) {
	svc := &stubMasjidService{}
	handler := newTestServer(t, svc)

	body := `{"address":"12 Crescent Road","city":"Boston","state":"MA","zipCode":"02101","country":"USA"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/masjids", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.createCalled)
	assert.JSONEq(t, `{"success":false,"errors":[{"path":"name","message":"Name is required"}]}`, rec.Body.String())
}

func TestCreateMasjidInvalidBody(t *testing.T) {
	svc := &stubMasjidService{}
	handler := newTestServer(t, svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/masjids", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.createCalled)
	assert.Contains(t, rec.Body.String(), `"path":"body"`)
}

func TestMasjidsMethodNotAllowed(t *testing.T) {
	handler := newTestServer(t, &stubMasjidService{})

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(method, "/api/masjids", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method %s", method)
		assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(t, &stubMasjidService{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, rec.Body.String())
}

func TestDirectoryPage(t *testing.T) {
	handler := newTestServer(t, &stubMasjidService{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Masjid Directory")
}
