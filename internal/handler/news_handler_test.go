package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type stubIngest struct {
	report     model.IngestReport
	err        error
	configured bool
}

func (s *stubIngest) Ingest(_ context.Context) (model.IngestReport, error) {
	return s.report, s.err
}

func (s *stubIngest) APIConfigured() bool { return s.configured }

type stubCounter struct {
	count int
	err   error
}

func (s *stubCounter) Count(_ context.Context) (int, error) {
	return s.count, s.err
}

func newNewsTestRouter(ingest IngestService, counter NewsCounter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(ingest, counter)
	r.POST("/fetchNews", h.PostFetchNews)
	r.GET("/fetchNews", h.GetFetchNews)
	r.GET("/health", h.GetHealth)
	return r
}

func TestPostFetchNews_Success(t *testing.T) {
	ingest := &stubIngest{report: model.IngestReport{Inserted: 3, Deleted: 2, TotalStored: 10}}
	r := newNewsTestRouter(ingest, &stubCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fetchNews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res IngestResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.NotEqual(t, "", res.Message)
	assert.Equal(t, 3, res.Data.Inserted)
	assert.Equal(t, 2, res.Data.Deleted)
	assert.Equal(t, 10, res.Data.TotalStored)
}

func TestPostFetchNews_Failure(t *testing.T) {
	ingest := &stubIngest{err: errors.New("DB down")}
	r := newNewsTestRouter(ingest, &stubCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fetchNews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res IngestResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Success)
	assert.NotEqual(t, "", res.Error)
}

func TestGetFetchNews_Status(t *testing.T) {
	ingest := &stubIngest{configured: true}
	r := newNewsTestRouter(ingest, &stubCounter{count: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fetchNews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsStatusResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, true, res.Status.DatabaseHealthy)
	assert.Equal(t, 7, res.Status.NewsCount)
	assert.Equal(t, true, res.Status.APIConfigured)
}

func TestGetFetchNews_UnhealthyDatabase(t *testing.T) {
	ingest := &stubIngest{}
	r := newNewsTestRouter(ingest, &stubCounter{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fetchNews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res NewsStatusResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Status.DatabaseHealthy)
	assert.Equal(t, false, res.Status.APIConfigured)
}

func TestGetHealth(t *testing.T) {
	r := newNewsTestRouter(&stubIngest{}, &stubCounter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}

func TestGetHealth_Unhealthy(t *testing.T) {
	r := newNewsTestRouter(&stubIngest{}, &stubCounter{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
