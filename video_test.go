//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare_test

import (
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ucare"
)

func TestVideoPath(t *testing.T) {
	for _, tt := range []struct {
		req    ucare.VideoRequest
		expect string
	}{
		{
			req:    ucare.VideoRequest{Fmt: "mp4"},
			expect: "id/video/-/format/mp4/",
		},
		{
			req:    ucare.NewVideoRequest("mp4"),
			expect: "id/video/-/format/mp4/-/thumbs~1/",
		},
		{
			req:    ucare.VideoRequest{Fmt: "webm", Width: 640},
			expect: "id/video/-/size/640x/-/format/webm/",
		},
		{
			req:    ucare.VideoRequest{Fmt: "webm", Height: 480, Mode: ucare.VideoAddPadding, Q: "better"},
			expect: "id/video/-/size/x480/add_padding/-/quality/better/-/format/webm/",
		},
		{
			req: ucare.NewVideoRequest("ogg").
				Size(640, 480, ucare.VideoChangeRatio).
				Cut("0:0:10", "").
				WithThumbs(5),
			expect: "id/video/-/size/640x480/change_ratio/-/format/ogg/-/cut/0:0:10/end/-/thumbs~5/",
		},
		{
			req:    ucare.VideoRequest{Fmt: "mp4", Start: "000:00:01.000", End: "000:00:05.500"},
			expect: "id/video/-/format/mp4/-/cut/000:00:01.000/000:00:05.500/",
		},
	} {
		it.Then(t).Should(
			it.Nil(ucare.ValidateVideoRequest(tt.req)),
			it.Equal(ucare.VideoPath("id", tt.req), tt.expect),
		)
	}
}

func TestVideoRequestInvalid(t *testing.T) {
	it.Then(t).ShouldNot(
		it.Nil(ucare.ValidateVideoRequest(ucare.VideoRequest{})),
		it.Nil(ucare.ValidateVideoRequest(ucare.VideoRequest{Fmt: "mp4", N: -1})),
		it.Nil(ucare.ValidateVideoRequest(nil)),
	)
}
