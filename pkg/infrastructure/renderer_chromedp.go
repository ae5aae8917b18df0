package infrastructure

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const chromeTimeout = 60 * time.Second

// ChromedpRenderer drives headless Chrome for the two bitmap-adjacent jobs
// this service has: printing markup straight to PDF (the render-service
// endpoint other instances call as their remote strategy) and capturing a
// full-page screenshot for the rasterization fallback.
type ChromedpRenderer struct {
	chromePath string
	logger     *zap.Logger
}

func NewChromedpRenderer(chromePath string, logger *zap.Logger) *ChromedpRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChromedpRenderer{chromePath: chromePath, logger: logger}
}

func (r *ChromedpRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	return opts
}

// run executes actions in a fresh browser context with a hard timeout.
func (r *ChromedpRenderer) run(ctx context.Context, actions ...chromedp.Action) error {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, chromeTimeout)
	defer cancel2()

	return chromedp.Run(ctx2, actions...)
}

// setContent loads markup into the current frame without touching disk.
func setContent(html string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	}
}

// RenderHTMLToPDF prints the markup to an A4 PDF byte stream.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	var pdfBuf []byte
	err := r.run(ctx,
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("printed HTML to PDF", zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}

// CaptureFullPage screenshots the whole rendered page as PNG at the given
// viewport width. Used as the rasterization source for the export fallback.
func (r *ChromedpRenderer) CaptureFullPage(ctx context.Context, html string, widthPx int64) ([]byte, error) {
	if widthPx <= 0 {
		widthPx = 794 // 210mm at 96dpi
	}
	var shot []byte
	err := r.run(ctx,
		chromedp.EmulateViewport(widthPx, 1123),
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("captured full-page screenshot", zap.Int("bytes", len(shot)))
	return shot, nil
}
