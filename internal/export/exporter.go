// Package export turns a rendered resume layout into a paginated PDF. The
// raster of the layout is sliced into consecutive vertical strips, one per
// physical page, and the strips are placed inside a fixed margin band.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"time"
)

// A4 page geometry in millimeters.
const (
	A4WidthMM  = 210.0
	A4HeightMM = 297.0
)

// DefaultMargins leave a 20mm band on every side, giving a 170x257mm
// content area on A4.
var DefaultMargins = Margins{Top: 20, Bottom: 20, Left: 20, Right: 20}

// The two failure kinds callers may distinguish. Both surface to the user
// as a single "export failed, try again" outcome; neither is retried.
var (
	ErrCaptureFailed  = errors.New("export: capture failed")
	ErrAssemblyFailed = errors.New("export: document assembly failed")
)

// Result is a finished export: the document bytes plus the download name.
type Result struct {
	Filename string
	PDF      []byte
	Pages    int
}

// Exporter paginates captured rasters into PDF documents. Each Export call
// captures its own raster snapshot, so concurrent exports are independent.
type Exporter struct {
	capturer   Capturer
	margins    Margins
	pageWMM    float64
	pageHMM    float64
	newBuilder func(pageWMM, pageHMM float64) DocumentBuilder
	now        func() time.Time
}

func NewExporter(c Capturer) *Exporter {
	return &Exporter{
		capturer: c,
		margins:  DefaultMargins,
		pageWMM:  A4WidthMM,
		pageHMM:  A4HeightMM,
		newBuilder: func(w, h float64) DocumentBuilder {
			return NewFPDFBuilder(w, h)
		},
		now: time.Now,
	}
}

// ContentWidthMM is the printable width between the side margins.
func (e *Exporter) ContentWidthMM() float64 { return e.pageWMM - e.margins.Left - e.margins.Right }

// ContentHeightMM is the printable height between the top/bottom margins.
func (e *Exporter) ContentHeightMM() float64 { return e.pageHMM - e.margins.Top - e.margins.Bottom }

// Export captures the rendered HTML, slices the raster into pages and
// assembles the PDF. templateName only influences the download filename.
func (e *Exporter) Export(ctx context.Context, html, templateName string) (*Result, error) {
	img, err := e.capturer.Capture(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: capturer returned no raster", ErrCaptureFailed)
	}

	pdf, pages, err := e.buildDocument(img)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("curriculo-%s-%s.pdf", templateName, e.now().Format("2006-01-02"))
	return &Result{Filename: name, PDF: pdf, Pages: pages}, nil
}

func (e *Exporter) buildDocument(img image.Image) ([]byte, int, error) {
	bounds := img.Bounds()
	plan, err := Paginate(bounds.Dx(), bounds.Dy(), e.ContentWidthMM(), e.ContentHeightMM())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	builder := e.newBuilder(e.pageWMM, e.pageHMM)
	for _, slice := range plan.Slices {
		if slice.Index > 0 {
			builder.AddPage()
		}
		if slice.SrcHeight <= 0 {
			// Degenerate raster: keep the empty page, place nothing.
			continue
		}
		crop := cropRows(img, slice.SrcY, slice.SrcHeight)
		if err := builder.PlaceImage(crop, e.margins.Left, e.margins.Top, slice.WidthMM, slice.HeightMM); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
		}
	}

	out, err := builder.Bytes()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrAssemblyFailed, err)
	}
	return out, plan.TotalPages, nil
}

// cropRows copies the horizontal band [y, y+h) of src into a fresh image.
func cropRows(src image.Image, y, h int) image.Image {
	b := src.Bounds()
	rect := image.Rect(b.Min.X, b.Min.Y+y, b.Max.X, b.Min.Y+y+h)
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst
}
