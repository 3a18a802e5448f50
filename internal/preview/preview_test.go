//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package preview_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ucare"
	"github.com/fogfish/ucare/internal/preview"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

// 400x200 image, left half is red, right half is blue
func sample() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for x := 0; x < 400; x++ {
		for y := 0; y < 200; y++ {
			if x < 200 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func at(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)).(color.RGBA)
}

func render(t *testing.T, ops ...ucare.Operation) image.Image {
	t.Helper()

	img, err := preview.Render(sample(), ops)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestRenderSize(t *testing.T) {
	for _, tt := range []struct {
		op   ucare.Operation
		x, y int
	}{
		{op: ucare.Resize{Width: 100}, x: 100, y: 50},
		{op: ucare.Resize{Height: 100}, x: 200, y: 100},
		{op: ucare.Resize{Width: 30, Height: 30}, x: 30, y: 30},
		{op: ucare.ScaleCrop{Width: 100, Height: 100}, x: 100, y: 100},
		{op: ucare.ScaleCrop{Width: 50, Height: 100, Center: true}, x: 50, y: 100},
		{op: ucare.Crop{Width: 100, Height: 100}, x: 100, y: 100},
		{op: ucare.Crop{Width: 500, Height: 300}, x: 500, y: 300},
	} {
		img := render(t, tt.op)
		it.Then(t).Should(
			it.Equal(img.Bounds().Dx(), tt.x),
			it.Equal(img.Bounds().Dy(), tt.y),
		)
	}
}

func TestRenderCrop(t *testing.T) {
	t.Run("TopLeft", func(t *testing.T) {
		img := render(t, ucare.Crop{Width: 100, Height: 100})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), red),
			it.Equal(at(img, 99, 99), red),
		)
	})

	t.Run("Center", func(t *testing.T) {
		img := render(t, ucare.Crop{Width: 100, Height: 100, Center: true})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), red),
			it.Equal(at(img, 99, 0), blue),
		)
	})

	t.Run("FillColor", func(t *testing.T) {
		img := render(t, ucare.Crop{Width: 500, Height: 200, FillColor: "00ff00"})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), red),
			it.Equal(at(img, 399, 0), blue),
			it.Equal(at(img, 450, 10), green),
		)
	})

	t.Run("FillColorShort", func(t *testing.T) {
		img := render(t, ucare.Crop{Width: 400, Height: 300, Center: true, FillColor: "0f0"})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), green),
			it.Equal(at(img, 0, 100), red),
		)
	})

	t.Run("InvalidColor", func(t *testing.T) {
		_, err := preview.Render(sample(), []ucare.Operation{
			ucare.Crop{Width: 500, Height: 500, FillColor: "green"},
		})
		it.Then(t).ShouldNot(it.Nil(err))
	})

	t.Run("InvalidSize", func(t *testing.T) {
		_, err := preview.Render(sample(), []ucare.Operation{
			ucare.Crop{Width: 0, Height: 10},
		})
		it.Then(t).ShouldNot(it.Nil(err))
	})
}

func TestRenderEffect(t *testing.T) {
	t.Run("Mirror", func(t *testing.T) {
		img := render(t, ucare.EffectOp{Effect: ucare.Mirror})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), blue),
			it.Equal(at(img, 399, 0), red),
		)
	})

	t.Run("Flip", func(t *testing.T) {
		img := render(t,
			ucare.Crop{Width: 400, Height: 300},
			ucare.EffectOp{Effect: ucare.Flip},
		)
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
			it.Equal(at(img, 0, 299), red),
		)
	})

	t.Run("Invert", func(t *testing.T) {
		img := render(t, ucare.EffectOp{Effect: ucare.Invert})
		it.Then(t).Should(
			it.Equal(at(img, 0, 0), color.RGBA{G: 0xff, B: 0xff, A: 0xff}),
		)
	})

	t.Run("Grayscale", func(t *testing.T) {
		c := at(render(t, ucare.EffectOp{Effect: ucare.Grayscale}), 0, 0)
		it.Then(t).Should(
			it.Equal(c.R, c.G),
			it.Equal(c.G, c.B),
		)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := preview.Render(sample(), []ucare.Operation{
			ucare.EffectOp{Effect: ucare.Effect("sepia")},
		})
		it.Then(t).ShouldNot(it.Nil(err))
	})
}

func TestCropToScale(t *testing.T) {
	for _, tt := range []struct {
		source, target image.Point
		x, y           int
	}{
		{source: image.Pt(400, 200), target: image.Pt(100, 100), x: 200, y: 0},
		{source: image.Pt(200, 400), target: image.Pt(100, 100), x: 0, y: 200},
		{source: image.Pt(400, 200), target: image.Pt(200, 100), x: 0, y: 0},
	} {
		x, y := preview.CropToScale(tt.source, tt.target)
		it.Then(t).Should(
			it.Equal(x, tt.x),
			it.Equal(y, tt.y),
		)
	}
}
