package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"report-srv/internal/middleware"
	"report-srv/internal/report"
	"report-srv/pkg/log"
)

type fakeUseCase struct {
	out report.ComposeOutput
	err error
	got report.ComposeInput
}

func (f *fakeUseCase) Compose(ctx context.Context, input report.ComposeInput) (report.ComposeOutput, error) {
	f.got = input
	return f.out, f.err
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	h.RegisterRoutes(r.Group("/api/v1"), middleware.New(log.NewNop()))
	return r
}

func TestGetReport(t *testing.T) {
	t.Run("streams attachment", func(t *testing.T) {
		uc := &fakeUseCase{out: report.ComposeOutput{
			FileName:    "report-weekly_2026-01-01_2026-01-07.csv",
			ContentType: "text/csv",
			Data:        []byte("ID,Email\n"),
		}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly?from=2026-01-01&to=2026-01-07", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("content type = %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "report-weekly_2026-01-01_2026-01-07.csv") {
			t.Errorf("content disposition = %s", cd)
		}
		if uc.got.Format != report.FormatCSV {
			t.Errorf("format should default to csv, got %s", uc.got.Format)
		}
	})

	t.Run("invalid date yields 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly?from=01-02-2026&to=2026-01-07", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("from after to yields 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly?from=2026-01-08&to=2026-01-07", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown report type yields 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/hourly?from=2026-01-01&to=2026-01-07", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown channel yields 404", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{err: report.ErrChannelNotFound})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/channel?from=2026-01-01&to=2026-01-07&channel_id=nope", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("compose failure yields 500", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{err: report.ErrComposeFailed})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/weekly?from=2026-01-01&to=2026-01-07", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
	})
}
