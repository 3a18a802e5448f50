//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//
// Disk configuration and autowire are adapted from github.com/bounoable/godrive
//

// Package s3 provides the Amazon S3 disk for mirroring.
package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fogfish/faults"
)

const (
	errCreate = faults.Safe1[string]("s3 create failed (%s)")
	errWrite  = faults.Safe1[string]("s3 write failed (%s)")
)

// Meta is the object metadata written along with the image.
type Meta struct {
	ContentType  string `metadata:"Content-Type"`
	CacheControl string `metadata:"Cache-Control"`
}

// FileSystem is the writable view of the bucket. The object is uploaded
// when the writer is closed.
type FileSystem interface {
	Create(key string, meta *Meta) (io.WriteCloser, error)
}

// Disk is the Amazon S3 disk.
type Disk struct {
	fs     FileSystem
	Config Config
}

// Config is the disk configuration.
type Config struct {
	Bucket       string
	Region       string
	CacheControl string
}

// Option is a disk configuration option.
type Option func(*Config)

// CacheControl defines Cache-Control header of mirrored objects.
func CacheControl(value string) Option {
	return func(cfg *Config) {
		cfg.CacheControl = value
	}
}

// NewDisk creates a new Amazon S3 disk on top of the bucket file system.
func NewDisk(fs FileSystem, region, bucket string, options ...Option) *Disk {
	if fs == nil {
		panic("invalid s3 file system")
	}

	cfg := Config{
		Region: region,
		Bucket: bucket,
	}

	for _, opt := range options {
		opt(&cfg)
	}

	return &Disk{
		fs:     fs,
		Config: cfg,
	}
}

// Put writes JPEG image b to the file with the given key.
func (d *Disk) Put(ctx context.Context, key string, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := "/" + strings.TrimPrefix(key, "/")

	fd, err := d.fs.Create(path,
		&Meta{
			ContentType:  "image/jpeg",
			CacheControl: d.Config.CacheControl,
		},
	)
	if err != nil {
		return errCreate.With(err, path)
	}

	if _, err := fd.Write(b); err != nil {
		fd.Close()
		return errWrite.With(err, path)
	}

	if err := fd.Close(); err != nil {
		return errWrite.With(err, path)
	}

	return nil
}

// URL returns the public URL for the file with given key.
func (d *Disk) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", d.Config.Bucket, d.Config.Region, strings.TrimPrefix(key, "/"))
}
