package handler

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/auth"
	"github.com/MikhailRaia/slugid/internal/middleware"
	"github.com/MikhailRaia/slugid/internal/model"
	"github.com/MikhailRaia/slugid/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Fill(buf []byte) error {
	clear(buf)
	return nil
}

type failingSource struct{}

func (failingSource) Fill([]byte) error {
	return errors.New("entropy source closed")
}

func newRouter(src slugid.Source) http.Handler {
	return NewHandler(service.NewSlugService(src, 10), nil).RegisterRoutes()
}

func TestHandler_single(t *testing.T) {
	tests := []struct {
		name       string
		src        slugid.Source
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "v4",
			src:        zeroSource{},
			path:       "/v4",
			wantStatus: http.StatusOK,
			wantBody:   "AAAAAAAAQACAAAAAAAAAAA",
		},
		{
			name:       "nice",
			src:        zeroSource{},
			path:       "/nice",
			wantStatus: http.StatusOK,
			wantBody:   "AAAAAAAAQACAAAAAAAAAAA",
		},
		{
			name:       "entropy failure",
			src:        failingSource{},
			path:       "/v4",
			wantStatus: http.StatusInternalServerError,
			wantBody:   "",
		},
		{
			name:       "unknown route",
			src:        zeroSource{},
			path:       "/v7",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			newRouter(tt.src).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestHandler_NiceFirstCharacter(t *testing.T) {
	router := newRouter(slugid.Default())

	for i := 0; i < 200; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nice", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		id := rec.Body.String()
		require.Len(t, id, slugid.Size)
		assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdef", rune(id[0])), "bad first character in %s", id)
	}
}

func TestHandler_handleList(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantMode   string
		wantCount  int
		wantBody   string
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantMode: "v4", wantCount: 1},
		{name: "nice batch", query: "?mode=nice&count=4", wantStatus: http.StatusOK, wantMode: "nice", wantCount: 4},
		{name: "bad mode", query: "?mode=short", wantStatus: http.StatusBadRequest, wantBody: "unknown slugid mode"},
		{name: "bad count", query: "?count=many", wantStatus: http.StatusBadRequest},
		{name: "count over limit", query: "?count=11", wantStatus: http.StatusBadRequest, wantBody: "11 not in 1..10"},
		{name: "zero count", query: "?count=0", wantStatus: http.StatusBadRequest, wantBody: "0 not in 1..10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/slugids"+tt.query, nil)
			rec := httptest.NewRecorder()

			newRouter(slugid.Default()).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
				return
			}

			var resp model.BatchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMode, resp.Mode)
			assert.Len(t, resp.Slugids, tt.wantCount)
		})
	}
}

func TestHandler_HandleBatchJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		src         slugid.Source
		wantStatus  int
		wantCount   int
	}{
		{
			name:        "valid",
			body:        `{"mode":"nice","count":3}`,
			contentType: "application/json",
			src:         slugid.Default(),
			wantStatus:  http.StatusCreated,
			wantCount:   3,
		},
		{
			name:        "wrong content type",
			body:        `{"mode":"nice","count":3}`,
			contentType: "text/plain",
			src:         slugid.Default(),
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "malformed json",
			body:        `{"mode":`,
			contentType: "application/json",
			src:         slugid.Default(),
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "missing count",
			body:        `{"mode":"v4"}`,
			contentType: "application/json",
			src:         slugid.Default(),
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "entropy failure",
			body:        `{"mode":"v4","count":2}`,
			contentType: "application/json",
			src:         failingSource{},
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/slugids/batch", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			newRouter(tt.src).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			var resp model.BatchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Slugids, tt.wantCount)
		})
	}
}

func TestHandler_GzipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(`{"mode":"v4","count":2}`))
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/slugids/batch", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	newRouter(zeroSource{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)

	assert.JSONEq(t, `{"mode":"v4","slugids":["AAAAAAAAQACAAAAAAAAAAA","AAAAAAAAQACAAAAAAAAAAA"]}`, string(body))
}

func TestHandler_Auth(t *testing.T) {
	jwtService := auth.NewJWTService("secret", slugid.Default())
	router := NewHandler(service.NewSlugService(zeroSource{}, 10), middleware.NewAuthMiddleware(jwtService)).RegisterRoutes()

	token, err := jwtService.GenerateToken("deploy-bot")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v4", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v4", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "AAAAAAAAQACAAAAAAAAAAA", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
