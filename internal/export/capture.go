package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Capturer rasterizes a rendered resume layout into a bitmap. It is an
// atomic boundary: either a complete raster comes back or an error does.
type Capturer interface {
	Capture(ctx context.Context, html string) (image.Image, error)
}

// ChromeCapturer renders the HTML in headless Chrome at a fixed viewport
// width and takes a full-height screenshot of the page.
type ChromeCapturer struct {
	ViewportWidth int64
	Timeout       time.Duration
}

func NewChromeCapturer() *ChromeCapturer {
	return &ChromeCapturer{ViewportWidth: 2000, Timeout: 60 * time.Second}
}

func (c *ChromeCapturer) Capture(ctx context.Context, html string) (image.Image, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, c.Timeout)
	defer cancel2()

	tmpDir, err := os.MkdirTemp("", "cv-capture-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var shot []byte
	err = chromedp.Run(ctx2,
		chromedp.EmulateViewport(c.ViewportWidth, 1080),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			if err != nil {
				return err
			}
			shot = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return img, nil
}
