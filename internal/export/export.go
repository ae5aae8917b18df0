// Package export turns a rendered resume document into PDF bytes through an
// ordered strategy chain: remote render service, native document-model
// writer, then client-style rasterization as the last resort. Each strategy
// runs at most once per export; earlier failures fall through silently and
// only the final failure is surfaced.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"resume-builder/internal/render"
)

// DefaultFilename is used when the caller does not supply a name. Callers
// are expected to derive something human-meaningful before exporting.
const DefaultFilename = "resume.pdf"

// Error codes for export failures.
const (
	ErrCodeNoSource     = "NO_SOURCE"
	ErrCodeBlankCapture = "BLANK_CAPTURE"
	ErrCodeRemoteFailed = "REMOTE_FAILED"
	ErrCodeRenderFailed = "RENDER_FAILED"
	ErrCodeInvalidPDF   = "INVALID_PDF"
	ErrCodeExhausted    = "STRATEGIES_EXHAUSTED"
)

// ExportError carries a stable code alongside the human message.
type ExportError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// NewExportError creates a new ExportError.
func NewExportError(code, message string, cause error) *ExportError {
	return &ExportError{Code: code, Message: message, Cause: cause}
}

// IsCode reports whether err is an ExportError with the given code.
func IsCode(err error, code string) bool {
	var ee *ExportError
	return errors.As(err, &ee) && ee.Code == code
}

// Job is one export request: a captured snapshot of the rendered document
// in both target forms. Strategies never mutate it.
type Job struct {
	// Document is the print-oriented tree, consumed by the native writer.
	Document *render.Document
	// HTML is the self-contained markup, consumed by the remote and
	// rasterization strategies.
	HTML string
	// Filename is the requested download name.
	Filename string
}

// Name returns the effective filename.
func (j *Job) Name() string {
	if j.Filename == "" {
		return DefaultFilename
	}
	return j.Filename
}

// Strategy is one export mechanism in the chain.
type Strategy interface {
	// Name identifies the strategy in logs and errors.
	Name() string
	// Available reports whether the strategy can serve this job at all;
	// unavailable strategies are skipped, not counted as failures.
	Available(job *Job) bool
	// Export produces finished PDF bytes or an error.
	Export(ctx context.Context, job *Job) ([]byte, error)
}

// Pipeline owns the ordered strategy chain.
type Pipeline struct {
	strategies []Strategy
	logger     *zap.Logger
}

// NewPipeline builds a pipeline over the given strategies, tried in order.
func NewPipeline(logger *zap.Logger, strategies ...Strategy) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{strategies: strategies, logger: logger}
}

// ExportPDF runs the chain and returns the first successful result. A
// strategy is attempted at most once; a failure falls through to the next
// without surfacing. Only when every available strategy has failed is an
// error returned, wrapping the last failure.
func (p *Pipeline) ExportPDF(ctx context.Context, job *Job) ([]byte, error) {
	if job == nil || (job.Document == nil && job.HTML == "") {
		return nil, NewExportError(ErrCodeNoSource,
			"nothing to export: rendered document is missing", nil)
	}

	var lastErr error
	attempted := 0
	for _, s := range p.strategies {
		if !s.Available(job) {
			p.logger.Debug("export strategy unavailable", zap.String("strategy", s.Name()))
			continue
		}
		attempted++

		data, err := s.Export(ctx, job)
		if err == nil && !isPDF(data) {
			err = NewExportError(ErrCodeInvalidPDF,
				fmt.Sprintf("%s produced invalid PDF output (len=%d)", s.Name(), len(data)), nil)
		}
		if err == nil {
			p.logger.Info("export succeeded",
				zap.String("strategy", s.Name()),
				zap.String("filename", job.Name()),
				zap.Int("bytes", len(data)))
			return data, nil
		}

		lastErr = err
		// silent fallthrough: logged, never surfaced unless the chain
		// exhausts
		p.logger.Warn("export strategy failed, falling through",
			zap.String("strategy", s.Name()),
			zap.Error(err))
	}

	if attempted == 0 {
		return nil, NewExportError(ErrCodeNoSource,
			"no export strategy can serve this document", nil)
	}
	return nil, NewExportError(ErrCodeExhausted,
		fmt.Sprintf("all %d export strategies failed", attempted), lastErr)
}

func isPDF(b []byte) bool {
	return len(b) > 0 && bytes.HasPrefix(b, []byte("%PDF"))
}
