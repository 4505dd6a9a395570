package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1230harry/commercial-db-api/internal/entity"
)

func TestEnableCORS_Preflight(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodOptions, "/api/products", "",
		"Origin", "http://localhost:5173",
		"Access-Control-Request-Method", "PUT",
		"Access-Control-Request-Headers", "Authorization, Content-Type",
	)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Empty(t, rec.Body.String())
}

func TestEnableCORS_DecoratesResponses(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRequireAdmin_WithoutClaims(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":   "abc",
		"bearer abc":   "abc",
		"Bearer  abc ": "abc",
		"Bearer":       "",
		"Basic abc":    "",
		"abc":          "",
		"":             "",
		"Bearer a b":   "",
	}
	for header, want := range tests {
		assert.Equal(t, want, bearerToken(header), "header %q", header)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		want  entity.Page
	}{
		{query: "", want: entity.Page{Number: 1, Size: 10}},
		{query: "page=3&limit=25", want: entity.Page{Number: 3, Size: 25}},
		{query: "page=0&limit=-5", want: entity.Page{Number: 1, Size: 10}},
		{query: "page=two&limit=abc", want: entity.Page{Number: 1, Size: 10}},
		{query: "page=2abc&limit=2.5", want: entity.Page{Number: 2, Size: 2}},
		{query: "page=+3&limit=%205", want: entity.Page{Number: 3, Size: 5}},
		{query: "page=-2x&limit=.5", want: entity.Page{Number: 1, Size: 10}},
		{query: "limit=1000", want: entity.Page{Number: 1, Size: 1000}},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, parsePage(q), tt.query)
	}
}
