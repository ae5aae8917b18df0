package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

var pdfBytes = []byte("%PDF-1.4\nfake\n%%EOF")

type stubRenderer struct {
	data []byte
	err  error
}

func (s *stubRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return s.data, s.err
}

func newTestApp(renderer HTMLRenderer) *fiber.App {
	repo := repository.NewResumesRepo(nil)
	pipeline := export.NewPipeline(nil, export.NewNativeStrategy())
	service := usecase.NewService(repo, pipeline, nil, nil)

	app := fiber.New()
	NewHandler(service, renderer, nil).Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*nethttp.Response, []byte) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func TestPreview(t *testing.T) {
	app := newTestApp(nil)

	resp, body := postJSON(t, app, "/preview", fiber.Map{
		"data":     model.DefaultResume(),
		"template": "classic",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, string(body), "John Doe")
	assert.Contains(t, string(body), `class="tpl-classic"`)
}

func TestPreview_MissingData(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/preview", fiber.Map{"template": "classic"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	app := newTestApp(nil)

	resp, body := postJSON(t, app, "/export", fiber.Map{
		"data":     model.DefaultResume(),
		"template": "modern",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="John_Doe_Resume.pdf"`,
		resp.Header.Get(fiber.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestExport_CustomFilename(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/export", fiber.Map{
		"data":     model.DefaultResume(),
		"filename": "my-resume.pdf",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "my-resume.pdf")
}

func TestExport_MissingData(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/export", fiber.Map{"template": "modern"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRenderHTML(t *testing.T) {
	app := newTestApp(&stubRenderer{data: pdfBytes})

	resp, body := postJSON(t, app, "/export-pdf", fiber.Map{
		"html":     "<html><body>resume</body></html>",
		"filename": "out.pdf",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "out.pdf")
	assert.Equal(t, pdfBytes, body)
}

func TestRenderHTML_MissingMarkup(t *testing.T) {
	app := newTestApp(&stubRenderer{data: pdfBytes})

	resp, _ := postJSON(t, app, "/export-pdf", fiber.Map{"filename": "out.pdf"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRenderHTML_RendererFailure(t *testing.T) {
	app := newTestApp(&stubRenderer{err: errors.New("chrome crashed")})

	resp, _ := postJSON(t, app, "/export-pdf", fiber.Map{"html": "<html></html>"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestSuggest_NotConfigured(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/suggest", fiber.Map{"prompt": "improve my summary"})
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestSuggest_MissingPrompt(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/suggest", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateResume_WithoutStorage(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/resumes", fiber.Map{"userId": "user-1", "title": "My Resume"})
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestCreateResume_MissingUser(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := postJSON(t, app, "/resumes", fiber.Map{"title": "My Resume"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetResume_InvalidID(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(fiber.MethodGet, "/resumes/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListResumes_MissingUser(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest(fiber.MethodGet, "/resumes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
