//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare_test

import (
	"errors"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ucare"
)

func TestParseOperation(t *testing.T) {
	t.Run("WellFormat", func(t *testing.T) {
		for input, expect := range map[string]ucare.Operation{
			"crop/200x200":               ucare.Crop{Width: 200, Height: 200},
			"crop/200x100/center":        ucare.Crop{Width: 200, Height: 100, Center: true},
			"crop/200x100/center/ffffff": ucare.Crop{Width: 200, Height: 100, Center: true, FillColor: "ffffff"},
			"crop/200x100/ffffff":        ucare.Crop{Width: 200, Height: 100, FillColor: "ffffff"},
			"resize/300x":                ucare.Resize{Width: 300},
			"resize/x300":                ucare.Resize{Height: 300},
			"resize/300x200/":            ucare.Resize{Width: 300, Height: 200},
			"scale_crop/10x20":           ucare.ScaleCrop{Width: 10, Height: 20},
			"scale_crop/10x20/center":    ucare.ScaleCrop{Width: 10, Height: 20, Center: true},
			"effect/flip":                ucare.EffectOp{Effect: ucare.Flip},
			"effect/mirror":              ucare.EffectOp{Effect: ucare.Mirror},
		} {
			val, err := ucare.ParseOperation(input)
			it.Then(t).Should(
				it.Nil(err),
				it.Equiv(val, expect),
			)
		}
	})

	t.Run("Corrupted", func(t *testing.T) {
		for _, input := range []string{
			"",
			"crop",
			"crop/200",
			"crop/Ax200",
			"crop/200x200/center/fff/extra",
			"crop/200x200/center/center",
			"crop/200x200/fff/center",
			"resize/x",
			"resize",
			"resize/10x10/center",
			"scale_crop/10x10/fff",
			"effect/blur",
			"effect",
			"rotate/90",
		} {
			_, err := ucare.ParseOperation(input)
			it.Then(t).Should(
				it.True(errors.Is(err, ucare.ErrInvalidOperation)),
			)
		}
	})
}

func TestParseChain(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		file := ucare.New(&mock{}).File("abc123").
			WithCrop(200, 200, ucare.Center(), ucare.FillColor("fafafa")).
			WithScaleCrop(50, 60).
			ApplyInvert()
		file, _ = file.WithResize(0, 20)

		ops, err := ucare.ParseChain("-/crop/200x200/center/fafafa/-/scale_crop/50x60/-/effect/invert/-/resize/x20/")
		it.Then(t).Should(
			it.Nil(err),
			it.Equiv(ops, file.Operations()),
		)

		again, err := ucare.New(&mock{}).File("abc123").With(ops...)
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(again.URL(), file.URL()),
		)
	})

	t.Run("RoundTripCenterFill", func(t *testing.T) {
		file := ucare.New(&mock{}).File("abc123").
			WithCrop(10, 20, ucare.FillColor("center"))

		ops, err := ucare.ParseChain(file.URL()[len("https://ucarecdn.com/abc123/"):])
		it.Then(t).Should(
			it.Nil(err),
			it.Equiv(ops, file.Operations()),
			it.Equiv(ops, []ucare.Operation{ucare.Crop{Width: 10, Height: 20, Center: true}}),
		)
	})

	t.Run("TrailingSeparator", func(t *testing.T) {
		for _, chain := range []string{
			"-/resize/1x2/-/",
			"-/resize/1x2/-",
			"/-/resize/1x2/",
			"resize/1x2",
		} {
			ops, err := ucare.ParseChain(chain)
			it.Then(t).Should(
				it.Nil(err),
				it.Equiv(ops, []ucare.Operation{ucare.Resize{Width: 1, Height: 2}}),
			)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		ops, err := ucare.ParseChain("-/")
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(len(ops), 0),
		)
	})

	t.Run("Corrupted", func(t *testing.T) {
		_, err := ucare.ParseChain("crop/10x10/-/effect/sepia")
		it.Then(t).ShouldNot(
			it.Nil(err),
		)
	})
}

func TestParseEffect(t *testing.T) {
	for _, e := range ucare.Effects() {
		val, err := ucare.ParseEffect(string(e))
		it.Then(t).Should(
			it.Nil(err),
			it.Equal(val, e),
		)
	}

	_, err := ucare.ParseEffect("sepia")
	it.Then(t).Should(
		it.True(errors.Is(err, ucare.ErrInvalidOperation)),
	)
}
