package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
)

// HTMLRenderer prints markup to PDF; backed by headless Chrome. Exposed so
// this instance can serve as the remote render strategy for its peers.
type HTMLRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	service  *usecase.Service
	renderer HTMLRenderer
	logger   *zap.Logger
}

func NewHandler(service *usecase.Service, renderer HTMLRenderer, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, renderer: renderer, logger: logger}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes", h.ListResumes)
	app.Get("/resumes/:id", h.GetResume)
	app.Put("/resumes/:id", h.SaveResume)
	app.Delete("/resumes/:id", h.DeleteResume)
	app.Post("/preview", h.Preview)
	app.Post("/export", h.Export)
	app.Post("/export-pdf", h.RenderHTML)
	app.Post("/suggest", h.Suggest)
}

type createReq struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing userId"})
	}

	rec, err := h.service.CreateResume(c.Context(), req.UserID, req.Title)
	if err != nil {
		return h.storageError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing userId"})
	}
	recs, err := h.service.ListResumes(c.Context(), userID)
	if err != nil {
		return h.storageError(c, err)
	}
	return c.JSON(recs)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	rec, err := h.service.GetResume(c.Context(), id)
	if err != nil {
		return h.storageError(c, err)
	}
	return c.JSON(rec)
}

type saveReq struct {
	UserID       string        `json:"userId"`
	Title        string        `json:"title"`
	Template     string        `json:"template"`
	SidebarColor string        `json:"sidebarColor"`
	Data         *model.Resume `json:"data"`
}

func (h *Handler) SaveResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req saveReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Data == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing resume data"})
	}

	rec, err := h.service.GetResume(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		return h.storageError(c, err)
	}

	rec.Title = req.Title
	rec.Template = req.Template
	rec.SidebarColor = req.SidebarColor
	rec.Data = req.Data
	if req.UserID != "" {
		rec.UserID = req.UserID
	}
	if err := h.service.SaveResume(c.Context(), rec); err != nil {
		return h.storageError(c, err)
	}
	return c.JSON(rec)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.service.DeleteResume(c.Context(), id); err != nil {
		return h.storageError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type previewReq struct {
	Data         *model.Resume `json:"data"`
	Template     string        `json:"template"`
	SidebarColor string        `json:"sidebarColor"`
}

// Preview renders live editor state; it is invoked on every change, so it
// takes the resume in the body rather than reading storage.
func (h *Handler) Preview(c *fiber.Ctx) error {
	var req previewReq
	if err := c.BodyParser(&req); err != nil || req.Data == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	html, err := h.service.Preview(req.Data, req.Template, req.SidebarColor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

type exportReq struct {
	Data         *model.Resume `json:"data"`
	Template     string        `json:"template"`
	SidebarColor string        `json:"sidebarColor"`
	Filename     string        `json:"filename"`
}

func (h *Handler) Export(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil || req.Data == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	pdf, filename, err := h.service.Export(c.Context(), req.Data, req.Template, req.SidebarColor, req.Filename)
	if err != nil {
		h.logger.Error("export failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if export.IsCode(err, export.ErrCodeNoSource) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

type renderReq struct {
	HTML     string `json:"html"`
	Filename string `json:"filename"`
}

// RenderHTML is the render-service endpoint: markup in, PDF stream out.
// Peers configured with RENDER_SERVICE_URL call this as their first export
// strategy.
func (h *Handler) RenderHTML(c *fiber.Ctx) error {
	var req renderReq
	if err := c.BodyParser(&req); err != nil || req.HTML == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing html"})
	}
	if h.renderer == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "renderer not available"})
	}

	pdf, err := h.renderer.RenderHTMLToPDF(c.Context(), req.HTML)
	if err != nil {
		h.logger.Error("html render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "PDF generation error"})
	}
	filename := req.Filename
	if filename == "" {
		filename = export.DefaultFilename
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

type suggestReq struct {
	Prompt string        `json:"prompt"`
	Data   *model.Resume `json:"data"`
}

func (h *Handler) Suggest(c *fiber.Ctx) error {
	var req suggestReq
	if err := c.BodyParser(&req); err != nil || req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing prompt"})
	}

	res, err := h.service.Suggest(c.Context(), req.Prompt, req.Data)
	if errors.Is(err, ai.ErrNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		h.logger.Error("suggestion failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to generate AI response"})
	}
	return c.JSON(fiber.Map{
		"text": res.Text,
		"bullets": fiber.Map{
			"ok":    res.Bullets.OK,
			"items": res.Bullets.Items,
			"raw":   res.Bullets.Raw,
		},
	})
}

func (h *Handler) storageError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	case errors.Is(err, repository.ErrNoStorage):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.Error("storage error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
}
