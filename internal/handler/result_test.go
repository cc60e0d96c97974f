package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/models"
	"github.com/NIACK18/office-to-markdown-app/internal/httputil"
)

func TestResultGetReturnsView(t *testing.T) {
	svc := &fakeConversionService{
		view: &models.ResultView{
			FileName:    "report.md",
			Preview:     "# Report",
			Truncated:   false,
			Length:      8,
			WordCount:   1,
			Source:      models.SourceFile,
			SourceName:  "report.docx",
			ConvertedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewResultHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/result", nil)
	req = httputil.WithSessionID(req, "sess-9")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if svc.gotSessionID != "sess-9" {
		t.Errorf("session ID = %q, want sess-9", svc.gotSessionID)
	}

	var view models.ResultView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if view.FileName != "report.md" || view.Preview != "# Report" {
		t.Errorf("view = %+v, want the stored view", view)
	}
}

func TestResultDownloadServesAttachment(t *testing.T) {
	svc := &fakeConversionService{
		result: &models.ConversionResult{
			FileName: "slides.md",
			Markdown: "# Slides\n\nFull content, not a preview.",
		},
	}
	h := NewResultHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/result/download", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("Content-Type = %q, want text/markdown; charset=utf-8", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename=slides.md` {
		t.Errorf("Content-Disposition = %q, want attachment with filename", cd)
	}
	if rec.Body.String() != "# Slides\n\nFull content, not a preview." {
		t.Errorf("body = %q, want the full markdown", rec.Body.String())
	}
}

func TestResultClearReturns204(t *testing.T) {
	svc := &fakeConversionService{}
	h := NewResultHandler(svc, discardLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/result", nil)
	req = httputil.WithSessionID(req, "sess-3")
	rec := httptest.NewRecorder()

	h.Clear(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(svc.cleared) != 1 || svc.cleared[0] != "sess-3" {
		t.Errorf("cleared sessions = %v, want [sess-3]", svc.cleared)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}
