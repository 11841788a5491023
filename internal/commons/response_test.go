package commons

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		limit int
		pages int
	}{
		{"partial last page", 25, 10, 3},
		{"exact pages", 20, 10, 2},
		{"single page", 3, 10, 1},
		{"empty", 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.total, 1, tc.limit)
			assert.Equal(t, tc.pages, p.Pages)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.limit, p.Limit)
		})
	}
}

func TestPagedResponseShape(t *testing.T) {
	resp := PagedResponse([]string{"a"}, NewPagination(25, 1, 10))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.NotContains(t, decoded, "errors")
	assert.NotContains(t, decoded, "message")

	pagination, ok := decoded["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), pagination["pages"])
}

func TestValidationErrorResponseShape(t *testing.T) {
	resp := ValidationErrorResponse[struct{}]([]FieldError{{Path: "name", Message: "Name is required"}})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"errors":[{"path":"name","message":"Name is required"}]}`, string(raw))
}

func TestErrorResponseShape(t *testing.T) {
	resp := ErrorResponse[struct{}]("Internal server error")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, string(raw))
}
