//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

// Package mirror copies CDN renditions of files to own storage disk.
package mirror

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	gohttp "net/http"

	"github.com/fogfish/faults"
	"github.com/fogfish/gurl/v2/http"
	ƒ "github.com/fogfish/gurl/v2/http/recv"
	ø "github.com/fogfish/gurl/v2/http/send"
	"github.com/fogfish/ucare"
	"golang.org/x/sync/errgroup"
)

const (
	errMirrorIO    = faults.Type("mirror I/O error")
	errMirrorWrite = faults.Safe1[string]("failed to write %s")
)

// Disk is the storage where renditions are written
type Disk interface {
	// Put writes b to the file at the given path.
	Put(ctx context.Context, path string, b []byte) error
}

// Mirror downloads renditions from CDN and writes them to disk as JPEG.
type Mirror struct {
	http.Stack
	disk        Disk
	quality     int
	concurrency int
}

// Option configures mirror
type Option func(*Mirror)

// WithQuality defines JPEG quality of written files
func WithQuality(q int) Option {
	return func(m *Mirror) {
		if q > 0 && q <= 100 {
			m.quality = q
		}
	}
}

// WithConcurrency bounds number of concurrent copies
func WithConcurrency(n int) Option {
	return func(m *Mirror) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

// WithClient uses the HTTP client for downloads
func WithClient(client *gohttp.Client) Option {
	return func(m *Mirror) {
		m.Stack = http.New(http.WithClient(client))
	}
}

func New(disk Disk, opts ...Option) *Mirror {
	client := http.Client()
	client.CheckRedirect = nil

	m := &Mirror{
		Stack:       http.New(http.WithClient(client)),
		disk:        disk,
		quality:     93,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Copy downloads the rendition of file and writes it to the path
func (m *Mirror) Copy(ctx context.Context, file ucare.File, path string) error {
	slog.Debug("mirroring file",
		slog.String("url", file.URL()),
		slog.String("path", path),
	)

	img, err := m.fetch(ctx, file.URL())
	if err != nil {
		return errMirrorIO.New(err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, *img, &jpeg.Options{Quality: m.quality}); err != nil {
		return errMirrorIO.New(err)
	}

	if err := m.disk.Put(ctx, path, buf.Bytes()); err != nil {
		return errMirrorWrite.With(err, path)
	}

	return nil
}

// CopyAll copies files concurrently, files are indexed by destination path
func (m *Mirror) CopyAll(ctx context.Context, files map[string]ucare.File) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for path, file := range files {
		p, f := path, file
		g.Go(func() error {
			return m.Copy(ctx, f, p)
		})
	}

	return g.Wait()
}

func (m *Mirror) fetch(ctx context.Context, url string) (*image.Image, error) {
	return http.IO[image.Image](m.WithContext(ctx),
		http.GET(
			ø.URI(url),
			ø.Accept.Set("image/*"),
			ƒ.Status.OK,
		),
	)
}
