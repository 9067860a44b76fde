package image

import (
	"errors"
	"fmt"
	stdimage "image"
	"image/color"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/component"
	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/rgb"
	"github.com/kpfaulkner/colour-go/util"
)

// ImageBuffer is a row major grid of RGBA pixels in standard S.
type ImageBuffer[S rgb.RgbStandard, T component.Component] struct {
	Width  int32
	Height int32
	Pix    []rgb.Rgba[S, T]
}

func NewImageBuffer[S rgb.RgbStandard, T component.Component](width int32, height int32) (*ImageBuffer[S, T], error) {
	if width < 0 || height < 0 {
		log.Errorf("invalid image size %dx%d", width, height)
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return &ImageBuffer[S, T]{
		Width:  width,
		Height: height,
		Pix:    make([]rgb.Rgba[S, T], int(width)*int(height)),
	}, nil
}

// NewImageBufferFromRaw wraps interleaved RGBA samples without copying them.
func NewImageBufferFromRaw[S rgb.RgbStandard, T component.Component](width int32, height int32, raw []T) (*ImageBuffer[S, T], error) {
	if width < 0 || height < 0 {
		log.Errorf("invalid image size %dx%d", width, height)
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(raw) != int(width)*int(height)*4 {
		log.Errorf("raw buffer has %d samples, %dx%d RGBA needs %d", len(raw), width, height, int(width)*int(height)*4)
		return nil, errors.New("raw buffer length does not match image size")
	}
	return &ImageBuffer[S, T]{
		Width:  width,
		Height: height,
		Pix:    rgb.FromRawSliceA[S](raw),
	}, nil
}

func NewImageBufferFromImageBuffer[S rgb.RgbStandard, T component.Component](ib *ImageBuffer[S, T]) *ImageBuffer[S, T] {
	pix := make([]rgb.Rgba[S, T], len(ib.Pix))
	copy(pix, ib.Pix)
	return &ImageBuffer[S, T]{Width: ib.Width, Height: ib.Height, Pix: pix}
}

// NewImageBufferFromImage reads any image.Image into 16 bit straight alpha pixels. The caller
// states which standard the source pixels are in.
func NewImageBufferFromImage[S rgb.RgbStandard](img stdimage.Image) *ImageBuffer[S, uint16] {
	bounds := img.Bounds()
	ib := &ImageBuffer[S, uint16]{
		Width:  int32(bounds.Dx()),
		Height: int32(bounds.Dy()),
		Pix:    make([]rgb.Rgba[S, uint16], bounds.Dx()*bounds.Dy()),
	}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
			ib.Pix[i] = rgb.NewRgba[S](c.R, c.G, c.B, c.A)
			i++
		}
	}
	return ib
}

// Equals compares two ImageBuffers and returns true if they are equal.
func (ib *ImageBuffer[S, T]) Equals(other ImageBuffer[S, T]) bool {
	if ib.Width != other.Width || ib.Height != other.Height || len(ib.Pix) != len(other.Pix) {
		return false
	}
	for i := range ib.Pix {
		if ib.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

func (ib *ImageBuffer[S, T]) At(x int32, y int32) rgb.Rgba[S, T] {
	return ib.Pix[int(y)*int(ib.Width)+int(x)]
}

func (ib *ImageBuffer[S, T]) Set(x int32, y int32, c rgb.Rgba[S, T]) {
	ib.Pix[int(y)*int(ib.Width)+int(x)] = c
}

// Row returns the pixels of row y, sharing memory with the buffer.
func (ib *ImageBuffer[S, T]) Row(y int32) []rgb.Rgba[S, T] {
	start := int(y) * int(ib.Width)
	return ib.Pix[start : start+int(ib.Width)]
}

// Raw returns the interleaved RGBA samples, sharing memory with the buffer.
func (ib *ImageBuffer[S, T]) Raw() []T {
	return rgb.IntoRawSliceA(ib.Pix)
}

// Image returns a read only image.Image view of the buffer.
func (ib *ImageBuffer[S, T]) Image() stdimage.Image {
	return imageView[S, T]{ib: ib}
}

type imageView[S rgb.RgbStandard, T component.Component] struct {
	ib *ImageBuffer[S, T]
}

func (v imageView[S, T]) ColorModel() color.Model {
	return color.RGBA64Model
}

func (v imageView[S, T]) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, int(v.ib.Width), int(v.ib.Height))
}

func (v imageView[S, T]) At(x int, y int) color.Color {
	if !(stdimage.Point{X: x, Y: y}.In(v.Bounds())) {
		return color.RGBA64{}
	}
	return v.ib.At(int32(x), int32(y))
}

// ConvertImageBuffer maps every pixel of src through fn into a new buffer. Rows are handed out
// to a pool of worker goroutines.
func ConvertImageBuffer[D rgb.RgbStandard, U component.Component, S rgb.RgbStandard, T component.Component](src *ImageBuffer[S, T], fn func(rgb.Rgba[S, T]) rgb.Rgba[D, U], opts *options.ConvertOptions) (*ImageBuffer[D, U], error) {
	if src == nil {
		log.Errorf("nil source image")
		return nil, errors.New("nil source image")
	}
	opt := options.NewConvertOptions(opts)
	dst, err := NewImageBuffer[D, U](src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	rows := make(chan int32, src.Height)
	for y := int32(0); y < src.Height; y++ {
		rows <- y
	}
	close(rows)

	workers := util.Min(opt.Workers, int(src.Height))
	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			startWorker(rows, src, dst, fn, opt.Clamp)
			wg.Done()
		}()
	}
	wg.Wait()

	if opt.Debug() {
		log.Debugf("converted %dx%d image with %d workers", src.Width, src.Height, workers)
	}
	return dst, nil
}

func startWorker[D rgb.RgbStandard, U component.Component, S rgb.RgbStandard, T component.Component](rows chan int32, src *ImageBuffer[S, T], dst *ImageBuffer[D, U], fn func(rgb.Rgba[S, T]) rgb.Rgba[D, U], clamp bool) {
	for y := range rows {
		in := src.Row(y)
		out := dst.Row(y)
		for x := range in {
			c := fn(in[x])
			if clamp {
				c = c.Clamp()
			}
			out[x] = c
		}
	}
}

func ImageBufferEquals[S rgb.RgbStandard, T component.Component](a []ImageBuffer[S, T], b []ImageBuffer[S, T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
