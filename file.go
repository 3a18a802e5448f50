//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare

import (
	"context"
)

// File is the CDN file with chain of pending transformations. The value is
// immutable, each With... or Apply... call returns a new File, the receiver
// is never changed. File is safe for concurrent use.
//
//	url := client.File(id).
//	  WithCrop(200, 200, ucare.Center()).
//	  ApplyGrayscale().
//	  URL()
type File struct {
	id         string
	host       string
	api        Requester
	operations []Operation
}

// NewFile creates the CDN file with the given id at the host. Empty host
// is DefaultCDNHost. The file with nil api renders URLs only, its Store
// fails with ErrNotBound.
func NewFile(id string, host string, api Requester) File {
	return File{id: id, host: host, api: api}
}

// ID returns the file id
func (f File) ID() string { return f.id }

// Host returns the CDN host
func (f File) Host() string {
	if f.host == "" {
		return DefaultCDNHost
	}
	return f.host
}

// Operations returns a copy of pending operations
func (f File) Operations() []Operation {
	seq := make([]Operation, len(f.operations))
	copy(seq, f.operations)
	return seq
}

// forks the file with one more operation, the new file never shares
// the backing array with the receiver.
func (f File) with(op Operation) File {
	seq := make([]Operation, len(f.operations), len(f.operations)+1)
	copy(seq, f.operations)

	return File{
		id:         f.id,
		host:       f.host,
		api:        f.api,
		operations: append(seq, op),
	}
}

// CropOption is optional parameter of crop operations
type CropOption func(*Crop)

// Center crops the area from the center of image.
func Center() CropOption {
	return func(op *Crop) { op.Center = true }
}

// FillColor defines the color of area outside of image (crop only).
// The literal "center" is the keyword, it is same as Center().
func FillColor(color string) CropOption {
	return func(op *Crop) {
		if color == "center" {
			op.Center = true
			return
		}
		op.FillColor = color
	}
}

// WithCrop crops the image. Dimensions are not validated.
func (f File) WithCrop(width, height int, opts ...CropOption) File {
	op := Crop{Width: width, Height: height}
	for _, opt := range opts {
		opt(&op)
	}

	return f.with(op)
}

// WithResize resizes the image. Zero dimension is absent, at least one of
// width or height is required. Zero is never sent as a value, the absent
// side renders empty: WithResize(0, 200) is resize/x200.
func (f File) WithResize(width, height int) (File, error) {
	if width == 0 && height == 0 {
		return File{}, invalid(string(TagResize), errResizeNoSize)
	}

	return f.with(Resize{Width: width, Height: height}), nil
}

// WithScaleCrop scales and crops the image. FillColor option is ignored.
func (f File) WithScaleCrop(width, height int, opts ...CropOption) File {
	crop := Crop{Width: width, Height: height}
	for _, opt := range opts {
		opt(&crop)
	}

	return f.with(ScaleCrop{Width: width, Height: height, Center: crop.Center})
}

// WithEffect applies the effect
func (f File) WithEffect(effect Effect) File {
	return f.with(EffectOp{Effect: effect})
}

func (f File) ApplyFlip() File      { return f.WithEffect(Flip) }
func (f File) ApplyGrayscale() File { return f.WithEffect(Grayscale) }
func (f File) ApplyInvert() File    { return f.WithEffect(Invert) }
func (f File) ApplyMirror() File    { return f.WithEffect(Mirror) }

// With appends operations to the chain, the operations are validated
// as their With... counterparts.
func (f File) With(ops ...Operation) (File, error) {
	file := f
	for _, op := range ops {
		switch v := op.(type) {
		case Resize:
			if v.Width == 0 && v.Height == 0 {
				return File{}, invalid(string(TagResize), errResizeNoSize)
			}
		case Crop:
			if v.FillColor == "center" {
				return File{}, invalid(string(TagCrop), errCropFillCenter)
			}
		}
		file = file.with(op)
	}

	return file, nil
}

// URL renders the CDN url
//
//	https://{host}/{id}/-/{op}/-/{op}/
func (f File) URL() string {
	url := "https://" + f.Host() + "/" + f.id + "/"

	if len(f.operations) == 0 {
		return url
	}

	return url + "-/" + renderChain(f.operations) + "/"
}

func (f File) String() string { return f.URL() }

// Store keeps the file at the storage permanently. The transport error is
// returned as-is.
func (f File) Store(ctx context.Context) error {
	if f.api == nil {
		return ErrNotBound
	}

	_, err := f.api.Request(ctx, ActionStore, MethodPost,
		map[string]string{ParamFileID: f.id},
	)
	return err
}
