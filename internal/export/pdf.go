package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// DocumentBuilder assembles page images into a binary document. The first
// page exists as soon as the builder is created; AddPage appends the next.
type DocumentBuilder interface {
	AddPage()
	PlaceImage(img image.Image, xMM, yMM, wMM, hMM float64) error
	Bytes() ([]byte, error)
}

// FPDFBuilder builds the document with gofpdf on a fixed page size in
// millimeters.
type FPDFBuilder struct {
	pdf    *gofpdf.Fpdf
	images int
}

func NewFPDFBuilder(pageWidthMM, pageHeightMM float64) *FPDFBuilder {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageWidthMM, Ht: pageHeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &FPDFBuilder{pdf: pdf}
}

func (b *FPDFBuilder) AddPage() {
	b.pdf.AddPage()
}

func (b *FPDFBuilder) PlaceImage(img image.Image, xMM, yMM, wMM, hMM float64) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}
	b.images++
	name := fmt.Sprintf("page-%d", b.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, opts, &buf)
	b.pdf.ImageOptions(name, xMM, yMM, wMM, hMM, false, opts, 0, "")
	if b.pdf.Err() {
		return fmt.Errorf("place page image: %s", b.pdf.Error())
	}
	return nil
}

func (b *FPDFBuilder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
