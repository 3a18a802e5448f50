//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package ucare

import (
	"strconv"
	"strings"
)

// VideoEncodingRequest describes video conversion. Zero values are absent,
// except Format that is required.
type VideoEncodingRequest interface {
	HorizontalSize() int
	VerticalSize() int
	ResizeMode() string
	Quality() string
	Format() string
	StartTime() string
	EndTime() string
	Thumbs() int
}

// Resize modes of video
const (
	VideoPreserveRatio = "preserve_ratio"
	VideoChangeRatio   = "change_ratio"
	VideoScaleCrop     = "scale_crop"
	VideoAddPadding    = "add_padding"
)

// VideoRequest is the plain implementation of VideoEncodingRequest.
type VideoRequest struct {
	Width  int
	Height int
	Mode   string
	Q      string
	Fmt    string
	Start  string
	End    string
	N      int
}

// NewVideoRequest creates request for the format with single thumbnail
func NewVideoRequest(format string) VideoRequest {
	return VideoRequest{Fmt: format, N: 1}
}

func (r VideoRequest) HorizontalSize() int { return r.Width }
func (r VideoRequest) VerticalSize() int   { return r.Height }
func (r VideoRequest) ResizeMode() string  { return r.Mode }
func (r VideoRequest) Quality() string     { return r.Q }
func (r VideoRequest) Format() string      { return r.Fmt }
func (r VideoRequest) StartTime() string   { return r.Start }
func (r VideoRequest) EndTime() string     { return r.End }
func (r VideoRequest) Thumbs() int         { return r.N }

// Size of the encoded video, zero side is computed from aspect ratio.
func (r VideoRequest) Size(w, h int, mode string) VideoRequest {
	r.Width, r.Height, r.Mode = w, h, mode
	return r
}

// Cut the fragment of video.
func (r VideoRequest) Cut(start, end string) VideoRequest {
	r.Start, r.End = start, end
	return r
}

// WithThumbs defines number of thumbnails to generate.
func (r VideoRequest) WithThumbs(n int) VideoRequest {
	r.N = n
	return r
}

// ValidateVideoRequest checks the request is complete
func ValidateVideoRequest(req VideoEncodingRequest) error {
	if req == nil || req.Format() == "" {
		return invalid("video", "format is required")
	}

	if req.Thumbs() < 0 {
		return invalid("video", "thumbs must not be negative")
	}

	return nil
}

// VideoPath renders conversion path of the file
//
//	{id}/video/-/size/{W}x{H}/{mode}/-/quality/{q}/-/format/{f}/-/cut/{start}/{end}/-/thumbs~{n}/
func VideoPath(id string, req VideoEncodingRequest) string {
	seq := []string{}

	if req.HorizontalSize() != 0 || req.VerticalSize() != 0 {
		part := "size/" + size(req.HorizontalSize(), req.VerticalSize())
		if req.ResizeMode() != "" {
			part += "/" + req.ResizeMode()
		}
		seq = append(seq, part)
	}

	if req.Quality() != "" {
		seq = append(seq, "quality/"+req.Quality())
	}

	seq = append(seq, "format/"+req.Format())

	if req.StartTime() != "" {
		end := req.EndTime()
		if end == "" {
			end = "end"
		}
		seq = append(seq, "cut/"+req.StartTime()+"/"+end)
	}

	if req.Thumbs() > 0 {
		seq = append(seq, "thumbs~"+strconv.Itoa(req.Thumbs()))
	}

	return id + "/video/-/" + strings.Join(seq, "/-/") + "/"
}
