package export

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// A4 dimensions in millimeters.
const (
	pageWidthMM  = 210.0
	pageHeightMM = 297.0
)

// captureWidthPx is the viewport width used for capture: 210mm at 96dpi.
const captureWidthPx = 794

// Screenshooter captures a full-page bitmap of rendered markup. The
// chromedp-backed implementation lives in pkg/infrastructure.
type Screenshooter interface {
	CaptureFullPage(ctx context.Context, html string, widthPx int64) ([]byte, error)
}

// RasterStrategy is the last-resort fallback: capture the displayed
// document as a bitmap, verify the capture is not blank, then slice it
// across successive A4 pages. Text in the result is not selectable, which
// is why the chain prefers every other strategy first.
type RasterStrategy struct {
	shooter Screenshooter
}

func NewRasterStrategy(shooter Screenshooter) *RasterStrategy {
	return &RasterStrategy{shooter: shooter}
}

func (s *RasterStrategy) Name() string { return "raster" }

func (s *RasterStrategy) Available(job *Job) bool {
	return s.shooter != nil && job.HTML != ""
}

func (s *RasterStrategy) Export(ctx context.Context, job *Job) ([]byte, error) {
	capture, err := s.shooter.CaptureFullPage(ctx, job.HTML, captureWidthPx)
	if err != nil {
		return nil, NewExportError(ErrCodeRenderFailed, "capturing document bitmap", err)
	}

	img, err := png.Decode(bytes.NewReader(capture))
	if err != nil {
		return nil, NewExportError(ErrCodeRenderFailed, "decoding captured bitmap", err)
	}

	// A silently blank PDF is a worse outcome than an explicit error, so a
	// blank capture is fatal rather than another fallthrough.
	if IsBlank(img) {
		return nil, NewExportError(ErrCodeBlankCapture,
			"captured bitmap is blank; refusing to emit an empty PDF", nil)
	}

	return AssemblePDF(capture, img.Bounds())
}

// blankSampleGrid is the number of sample points per axis used by IsBlank.
const blankSampleGrid = 32

// IsBlank samples pixels across the image and reports whether every sample
// is pure white or fully transparent.
func IsBlank(img image.Image) bool {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return true
	}
	stepX := b.Dx() / blankSampleGrid
	if stepX == 0 {
		stepX = 1
	}
	stepY := b.Dy() / blankSampleGrid
	if stepY == 0 {
		stepY = 1
	}
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				return false
			}
		}
	}
	return true
}

// AssemblePDF slices the captured bitmap into A4 pages. The image is placed
// at full page width; the first page draws at vertical offset zero, every
// following page draws the whole image at a negative offset so the next
// strip lands in the page viewport, advancing one page height at a time
// until the remaining height is consumed. The loop continues only while
// height remains strictly positive, so a capture that is an exact multiple
// of the page height does not produce a trailing blank page.
func AssemblePDF(capture []byte, bounds image.Rectangle) ([]byte, error) {
	imgW := float64(bounds.Dx())
	imgH := float64(bounds.Dy())
	if imgW == 0 || imgH == 0 {
		return nil, NewExportError(ErrCodeRenderFailed, "captured bitmap has zero size", nil)
	}
	imgHeightMM := imgH * pageWidthMM / imgW

	pdf := gofpdf.New("P", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, bytes.NewReader(capture))

	heightLeft := imgHeightMM
	offset := 0.0
	for {
		pdf.AddPage()
		pdf.ImageOptions("capture", 0, -offset, pageWidthMM, imgHeightMM, false, opts, 0, "")
		heightLeft -= pageHeightMM
		if heightLeft <= 0 {
			break
		}
		offset += pageHeightMM
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
