package export

import (
	"fmt"
	"math"
)

// Margins are the page margin band in millimeters. Content is placed
// inside it and never overlaps it.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// PageSlice describes one physical page's crop of the source raster.
// SrcY/SrcHeight are pixel rows in the source; WidthMM/HeightMM are the
// printed content size for that page.
type PageSlice struct {
	Index     int
	SrcY      int
	SrcHeight int
	WidthMM   float64
	HeightMM  float64
}

// Plan is the result of paginating a raster into page-sized strips.
type Plan struct {
	TotalPages    int
	ImageHeightMM float64
	Slices        []PageSlice
}

// Paginate slices a raster of widthPx x heightPx into consecutive vertical
// strips, each fitting contentWidthMM x contentHeightMM. The scale is fixed
// by the width: the raster is printed contentWidthMM wide, so one millimeter
// equals widthPx/contentWidthMM pixels.
//
// Slice boundaries are computed as rounded cumulative offsets so that the
// concatenation of all slices covers [0, heightPx) exactly, with no gaps or
// overlaps. A zero-height raster yields a single empty page; a zero or
// negative width is an error because the scale would be undefined.
func Paginate(widthPx, heightPx int, contentWidthMM, contentHeightMM float64) (*Plan, error) {
	if widthPx <= 0 {
		return nil, fmt.Errorf("paginate: raster width must be positive, got %dpx", widthPx)
	}
	if heightPx < 0 {
		return nil, fmt.Errorf("paginate: raster height must not be negative, got %dpx", heightPx)
	}
	if contentWidthMM <= 0 || contentHeightMM <= 0 {
		return nil, fmt.Errorf("paginate: content area must be positive, got %.2fx%.2fmm", contentWidthMM, contentHeightMM)
	}

	pxPerMM := float64(widthPx) / contentWidthMM
	imgHeightMM := float64(heightPx) / pxPerMM

	totalPages := int(math.Ceil(imgHeightMM / contentHeightMM))
	if totalPages < 1 {
		totalPages = 1
	}

	plan := &Plan{TotalPages: totalPages, ImageHeightMM: imgHeightMM}
	prev := 0
	for i := 0; i < totalPages; i++ {
		endMM := math.Min(imgHeightMM, float64(i+1)*contentHeightMM)
		end := int(math.Round(endMM * pxPerMM))
		if i == totalPages-1 {
			end = heightPx
		}
		hMM := math.Min(contentHeightMM, imgHeightMM-float64(i)*contentHeightMM)
		if hMM < 0 {
			hMM = 0
		}
		plan.Slices = append(plan.Slices, PageSlice{
			Index:     i,
			SrcY:      prev,
			SrcHeight: end - prev,
			WidthMM:   contentWidthMM,
			HeightMM:  hMM,
		})
		prev = end
	}
	return plan, nil
}
