// Package usecase wires the renderer, export pipeline, storage and AI
// adapter behind the operations the HTTP layer exposes.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/pkg/ai"
)

type Service struct {
	repo     *repository.ResumesRepo
	pipeline *export.Pipeline
	ai       *ai.Client
	logger   *zap.Logger
}

func NewService(repo *repository.ResumesRepo, pipeline *export.Pipeline, aiClient *ai.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, pipeline: pipeline, ai: aiClient, logger: logger}
}

// CreateResume starts a new record with placeholder content and persists it.
func (s *Service) CreateResume(ctx context.Context, userID, title string) (*domain.ResumeRecord, error) {
	if title == "" {
		title = "Untitled Resume"
	}
	rec := &domain.ResumeRecord{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Template: render.TemplateModern.String(),
		Data:     model.DefaultResume(),
	}
	rec.Touch()
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) GetResume(ctx context.Context, id uuid.UUID) (*domain.ResumeRecord, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListResumes(ctx context.Context, userID string) ([]*domain.ResumeRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SaveResume persists the whole record. Field-level merging is the
// editor's job; the storage contract is wholesale replacement.
func (s *Service) SaveResume(ctx context.Context, rec *domain.ResumeRecord) error {
	rec.Template = render.ParseTemplate(rec.Template).String()
	rec.Touch()
	return s.repo.Save(ctx, rec)
}

func (s *Service) DeleteResume(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Preview renders the resume into self-contained markup for on-screen
// display.
func (s *Service) Preview(data *model.Resume, tpl string, sidebarColor string) (string, error) {
	doc := render.Render(data, render.ParseTemplate(tpl), render.Options{SidebarColor: sidebarColor})
	return render.HTML(doc)
}

// Export renders both targets, captures them into an export job and runs
// the strategy chain. Returns the PDF bytes and the effective filename.
func (s *Service) Export(ctx context.Context, data *model.Resume, tpl, sidebarColor, filename string) ([]byte, string, error) {
	doc := render.Render(data, render.ParseTemplate(tpl), render.Options{SidebarColor: sidebarColor})
	html, err := render.HTML(doc)
	if err != nil {
		return nil, "", err
	}

	if filename == "" {
		filename = DeriveFilename(data.PersonalInfo.FullName)
	}

	job := &export.Job{Document: doc, HTML: html, Filename: filename}
	pdf, err := s.pipeline.ExportPDF(ctx, job)
	if err != nil {
		return nil, "", err
	}
	return pdf, job.Name(), nil
}

// DeriveFilename turns a person's name into a download name, falling back
// to the default when the name is empty.
func DeriveFilename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return export.DefaultFilename
	}
	return strings.ReplaceAll(name, " ", "_") + "_Resume.pdf"
}

// SuggestionResult carries the AI's free text plus the best-effort bullet
// parse; callers check Bullets.OK before treating it as a list.
type SuggestionResult struct {
	Text    string
	Bullets ai.BulletResult
}

// Suggest forwards a prompt with the resume as context and parses the
// reply.
func (s *Service) Suggest(ctx context.Context, prompt string, data *model.Resume) (*SuggestionResult, error) {
	if s.ai == nil {
		return nil, ai.ErrNotConfigured
	}
	text, err := s.ai.Suggest(ctx, prompt, data)
	if err != nil {
		return nil, err
	}
	return &SuggestionResult{Text: text, Bullets: ai.ParseBullets(text)}, nil
}

// ApplySummary overwrites the summary with suggested text.
func (s *Service) ApplySummary(data *model.Resume, text string) {
	data.Summary = text
}

// ApplyExperienceBullets replaces the description of one experience entry
// with parsed bullet items. The unparsed case is the caller's to handle.
func (s *Service) ApplyExperienceBullets(data *model.Resume, experienceID string, bullets ai.BulletResult) error {
	if !bullets.OK {
		return fmt.Errorf("suggestion did not parse as a bullet list")
	}
	for i := range data.Experience {
		if data.Experience[i].ID == experienceID {
			data.Experience[i].Description = bullets.Items
			return nil
		}
	}
	return fmt.Errorf("experience entry %s not found", experienceID)
}
