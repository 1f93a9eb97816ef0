package export

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCapturer struct {
	img image.Image
	err error
}

func (f *fakeCapturer) Capture(_ context.Context, _ string) (image.Image, error) {
	return f.img, f.err
}

type placement struct {
	x, y, w, h float64
	imgHeight  int
}

type fakeBuilder struct {
	pages      int
	placements []placement
	placeErr   error
	bytesErr   error
}

func (f *fakeBuilder) AddPage() { f.pages++ }

func (f *fakeBuilder) PlaceImage(img image.Image, x, y, w, h float64) error {
	if f.placeErr != nil {
		return f.placeErr
	}
	f.placements = append(f.placements, placement{x, y, w, h, img.Bounds().Dy()})
	return nil
}

func (f *fakeBuilder) Bytes() ([]byte, error) {
	if f.bytesErr != nil {
		return nil, f.bytesErr
	}
	return []byte("%PDF-fake"), nil
}

func newTestExporter(c Capturer, b *fakeBuilder) *Exporter {
	e := NewExporter(c)
	e.newBuilder = func(_, _ float64) DocumentBuilder { return b }
	e.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestExport_TwoPages(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2000, 6000))
	builder := &fakeBuilder{}
	e := newTestExporter(&fakeCapturer{img: img}, builder)

	res, err := e.Export(context.Background(), "<html></html>", "classico")
	require.NoError(t, err)

	assert.Equal(t, "curriculo-classico-2026-08-30.pdf", res.Filename)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, []byte("%PDF-fake"), res.PDF)

	// Page 0 uses the builder's initial page; only one page is appended.
	assert.Equal(t, 1, builder.pages)
	require.Len(t, builder.placements, 2)
	for _, p := range builder.placements {
		assert.Equal(t, DefaultMargins.Left, p.x)
		assert.Equal(t, DefaultMargins.Top, p.y)
		assert.InDelta(t, 170.0, p.w, 0.001)
	}
	assert.Equal(t, 3024, builder.placements[0].imgHeight)
	assert.Equal(t, 2976, builder.placements[1].imgHeight)
	assert.InDelta(t, 257.0, builder.placements[0].h, 0.001)
	assert.InDelta(t, 253.0, builder.placements[1].h, 0.001)
}

func TestExport_CaptureFailure(t *testing.T) {
	e := newTestExporter(&fakeCapturer{err: errors.New("chrome not reachable")}, &fakeBuilder{})

	_, err := e.Export(context.Background(), "<html></html>", "classico")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptureFailed)
}

func TestExport_NilRaster(t *testing.T) {
	e := newTestExporter(&fakeCapturer{}, &fakeBuilder{})

	_, err := e.Export(context.Background(), "<html></html>", "classico")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptureFailed)
}

func TestExport_AssemblyFailure(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2000, 1000))

	builder := &fakeBuilder{placeErr: errors.New("bad image")}
	e := newTestExporter(&fakeCapturer{img: img}, builder)
	_, err := e.Export(context.Background(), "<html></html>", "classico")
	assert.ErrorIs(t, err, ErrAssemblyFailed)

	builder = &fakeBuilder{bytesErr: errors.New("serialize failed")}
	e = newTestExporter(&fakeCapturer{img: img}, builder)
	_, err = e.Export(context.Background(), "<html></html>", "classico")
	assert.ErrorIs(t, err, ErrAssemblyFailed)
}

func TestExport_DegenerateRasterKeepsOnePage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2000, 0))
	builder := &fakeBuilder{}
	e := newTestExporter(&fakeCapturer{img: img}, builder)

	res, err := e.Export(context.Background(), "<html></html>", "classico")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pages)
	assert.Empty(t, builder.placements)
	assert.Equal(t, 0, builder.pages)
}

func TestFPDFBuilder_ProducesPDF(t *testing.T) {
	b := NewFPDFBuilder(A4WidthMM, A4HeightMM)
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	require.NoError(t, b.PlaceImage(img, 20, 20, 170, 170))
	b.AddPage()
	require.NoError(t, b.PlaceImage(img, 20, 20, 170, 170))

	out, err := b.Bytes()
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}
