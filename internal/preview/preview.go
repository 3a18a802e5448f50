//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

// Package preview applies CDN operations to the local image. It follows
// the CDN semantic closely enough to preview transformation chains offline.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strconv"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
	"github.com/fogfish/faults"
	"github.com/fogfish/ucare"
)

const (
	errInvalidSize   = faults.Safe1[string]("invalid size (%s)")
	errInvalidColor  = faults.Safe1[string]("invalid fill color (%s)")
	errNotSupported  = faults.Safe1[string]("not supported (%s)")
	defaultFillColor = "ffffff"
)

// Render applies operations to the image in the given order.
func Render(img image.Image, ops []ucare.Operation) (image.Image, error) {
	var err error

	for _, op := range ops {
		slog.Debug("rendering operation",
			slog.String("op", string(op.Tag())),
			slog.Group("source", "x", img.Bounds().Dx(), "y", img.Bounds().Dy()),
		)

		switch v := op.(type) {
		case ucare.Crop:
			img, err = crop(img, v)
		case ucare.Resize:
			img, err = resize(img, v)
		case ucare.ScaleCrop:
			img, err = scaleCrop(img, v)
		case ucare.EffectOp:
			img, err = apply(img, v.Effect)
		default:
			err = errNotSupported.With(nil, string(op.Tag()))
		}

		if err != nil {
			return nil, err
		}
	}

	return img, nil
}

func crop(img image.Image, op ucare.Crop) (image.Image, error) {
	if op.Width <= 0 || op.Height <= 0 {
		return nil, errInvalidSize.With(nil, strconv.Itoa(op.Width)+"x"+strconv.Itoa(op.Height))
	}

	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	x, y := 0, 0
	if op.Center {
		x, y = (dx-op.Width)/2, (dy-op.Height)/2
	}

	if x >= 0 && y >= 0 && op.Width <= dx && op.Height <= dy {
		area := image.Rect(x, y, x+op.Width, y+op.Height).Add(img.Bounds().Min)
		return transform.Crop(img, area), nil
	}

	// crop area exceeds the image, outside is filled
	hex := op.FillColor
	if hex == "" {
		hex = defaultFillColor
	}

	fill, err := parseColor(hex)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, op.Width, op.Height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img,
		image.Pt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y),
		draw.Over,
	)

	return canvas, nil
}

func resize(img image.Image, op ucare.Resize) (image.Image, error) {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	w, h := op.Width, op.Height

	switch {
	case w == 0 && h > 0:
		w = dx * h / dy
	case h == 0 && w > 0:
		h = dy * w / dx
	}

	if w <= 0 || h <= 0 {
		return nil, errInvalidSize.With(nil, strconv.Itoa(op.Width)+"x"+strconv.Itoa(op.Height))
	}

	return transform.Resize(img, w, h, transform.Lanczos), nil
}

func scaleCrop(img image.Image, op ucare.ScaleCrop) (image.Image, error) {
	if op.Width <= 0 || op.Height <= 0 {
		return nil, errInvalidSize.With(nil, strconv.Itoa(op.Width)+"x"+strconv.Itoa(op.Height))
	}

	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	cropX, cropY := CropToScale(
		image.Point{X: dx, Y: dy},
		image.Point{X: op.Width, Y: op.Height},
	)

	area := image.Rect(0, 0, dx-cropX, dy-cropY)
	if op.Center {
		area = image.Rect(cropX/2, cropY/2, dx-cropX/2, dy-cropY/2)
	}

	cropped := transform.Crop(img, area.Add(img.Bounds().Min))

	return transform.Resize(cropped, op.Width, op.Height, transform.Lanczos), nil
}

func apply(img image.Image, e ucare.Effect) (image.Image, error) {
	switch e {
	case ucare.Flip:
		return transform.FlipV(img), nil
	case ucare.Mirror:
		return transform.FlipH(img), nil
	case ucare.Grayscale:
		return effect.Grayscale(img), nil
	case ucare.Invert:
		return effect.Invert(img), nil
	}

	return nil, errNotSupported.With(nil, string(e))
}

// CropToScale calculates how much of the source has to be cropped
// along each axis to match the aspect ratio of target
func CropToScale(source image.Point, target image.Point) (int, int) {
	aspectSource := float64(source.X) / float64(source.Y)
	aspectTarget := float64(target.X) / float64(target.Y)

	if aspectSource > aspectTarget {
		width := int(float64(source.Y) * aspectTarget)
		return source.X - width, 0
	}

	if aspectSource < aspectTarget {
		height := int(float64(source.X) / aspectTarget)
		return 0, source.Y - height
	}

	return 0, 0
}

// parses color from hex rgb or rrggbb
func parseColor(hex string) (color.Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, errInvalidColor.With(nil, hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errInvalidColor.With(err, hex)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
