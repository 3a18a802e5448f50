//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tag is the wire name of CDN operation
type Tag string

const (
	TagCrop      = Tag("crop")
	TagResize    = Tag("resize")
	TagScaleCrop = Tag("scale_crop")
	TagEffect    = Tag("effect")
)

// Operation is a single CDN transformation directive. The set of operations
// is closed: Crop, Resize, ScaleCrop and EffectOp.
type Operation interface {
	Tag() Tag
	parts() []string
}

// Crop cuts the area of given size from the image.
type Crop struct {
	Width     int
	Height    int
	Center    bool
	FillColor string
}

func (Crop) Tag() Tag { return TagCrop }

func (op Crop) parts() []string {
	seq := []string{string(TagCrop), size(op.Width, op.Height)}
	if op.Center {
		seq = append(seq, "center")
	}
	if op.FillColor != "" {
		seq = append(seq, op.FillColor)
	}
	return seq
}

// Resize scales image to the given size, zero dimension is computed
// by the CDN from the aspect ratio.
type Resize struct {
	Width  int
	Height int
}

func (Resize) Tag() Tag { return TagResize }

func (op Resize) parts() []string {
	return []string{string(TagResize), size(op.Width, op.Height)}
}

// ScaleCrop scales the image down to fill the area and crops the remainder.
type ScaleCrop struct {
	Width  int
	Height int
	Center bool
}

func (ScaleCrop) Tag() Tag { return TagScaleCrop }

func (op ScaleCrop) parts() []string {
	seq := []string{string(TagScaleCrop), size(op.Width, op.Height)}
	if op.Center {
		seq = append(seq, "center")
	}
	return seq
}

// EffectOp applies the effect to the image.
type EffectOp struct {
	Effect Effect
}

func (EffectOp) Tag() Tag { return TagEffect }

func (op EffectOp) parts() []string {
	return []string{string(TagEffect), string(op.Effect)}
}

// absent dimension renders as empty string: 300x, x200
func size(w, h int) string {
	return dimension(w) + "x" + dimension(h)
}

func dimension(x int) string {
	if x == 0 {
		return ""
	}
	return strconv.Itoa(x)
}

// Renders operations into the wire format {tag}/{field}/-/{tag}/{field}
func renderChain(ops []Operation) string {
	seq := make([]string, len(ops))
	for i, op := range ops {
		seq[i] = strings.Join(op.parts(), "/")
	}
	return strings.Join(seq, "/-/")
}

// ParseChain parses operations from the wire format
// {tag}/{field}/.../-/{tag}/{field}/...
// Leading "-/" and trailing "/" or "/-/" are optional.
func ParseChain(chain string) ([]Operation, error) {
	chain = strings.Trim(chain, "/")
	chain = strings.TrimPrefix(chain, "-")
	chain = strings.TrimSuffix(chain, "-")
	chain = strings.Trim(chain, "/")
	if chain == "" {
		return nil, nil
	}

	expr := strings.Split(chain, "/-/")
	ops := make([]Operation, len(expr))
	for i, x := range expr {
		op, err := ParseOperation(x)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}

	return ops, nil
}

// ParseOperation parses single operation {tag}/{field}/...
func ParseOperation(expr string) (Operation, error) {
	seq := strings.Split(strings.Trim(expr, "/"), "/")

	switch Tag(seq[0]) {
	case TagCrop:
		if len(seq) < 2 || len(seq) > 4 {
			return nil, invalid(expr, "crop expects size, center and fill color")
		}
		w, h, err := parseSize(seq[1])
		if err != nil {
			return nil, invalid(expr, err.Error())
		}
		op := Crop{Width: w, Height: h}
		for _, x := range seq[2:] {
			switch {
			case x == "center" && !op.Center && op.FillColor == "":
				op.Center = true
			case x != "center" && x != "" && op.FillColor == "":
				op.FillColor = x
			default:
				return nil, invalid(expr, "unexpected field "+x)
			}
		}
		return op, nil

	case TagResize:
		if len(seq) != 2 {
			return nil, invalid(expr, "resize expects size")
		}
		w, h, err := parseSize(seq[1])
		if err != nil {
			return nil, invalid(expr, err.Error())
		}
		if w == 0 && h == 0 {
			return nil, invalid(expr, errResizeNoSize)
		}
		return Resize{Width: w, Height: h}, nil

	case TagScaleCrop:
		if len(seq) < 2 || len(seq) > 3 {
			return nil, invalid(expr, "scale_crop expects size and center")
		}
		w, h, err := parseSize(seq[1])
		if err != nil {
			return nil, invalid(expr, err.Error())
		}
		op := ScaleCrop{Width: w, Height: h}
		if len(seq) == 3 {
			if seq[2] != "center" {
				return nil, invalid(expr, "unexpected field "+seq[2])
			}
			op.Center = true
		}
		return op, nil

	case TagEffect:
		if len(seq) != 2 {
			return nil, invalid(expr, "effect expects name")
		}
		e, err := ParseEffect(seq[1])
		if err != nil {
			return nil, err
		}
		return EffectOp{Effect: e}, nil
	}

	return nil, invalid(expr, "unknown operation "+seq[0])
}

// Parses size from string {Width}x{Height}, either side might be empty
func parseSize(expr string) (int, int, error) {
	res := strings.Split(expr, "x")
	if len(res) != 2 {
		return 0, 0, errors.New("size is not {W}x{H}")
	}

	w, err := parseDimension(res[0])
	if err != nil {
		return 0, 0, err
	}

	h, err := parseDimension(res[1])
	if err != nil {
		return 0, 0, err
	}

	return w, h, nil
}

func parseDimension(expr string) (int, error) {
	if expr == "" {
		return 0, nil
	}

	x, err := strconv.Atoi(expr)
	if err != nil {
		return 0, fmt.Errorf("dimension is not a number: %s", expr)
	}

	return x, nil
}
