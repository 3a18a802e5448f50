//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//
// Adapted from github.com/bounoable/godrive
//

// Package gcs provides the Google Cloud Storage disk for mirroring.
package gcs

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// Disk is the Google Cloud Storage disk.
type Disk struct {
	Client *gcs.Client
	Config Config
}

// Config is the disk configuration.
type Config struct {
	Bucket string
	Public bool
}

// Option is a disk configuration option.
type Option func(*Config)

// Public configures the disk to make all uploaded files publicly accessible.
// It does not work with buckets that use uniform bucket-level access.
func Public(public bool) Option {
	return func(cfg *Config) {
		cfg.Public = public
	}
}

// NewDisk creates a new Google Cloud Storage disk.
func NewDisk(client *gcs.Client, bucket string, options ...Option) *Disk {
	if client == nil {
		panic("invalid google cloud storage client")
	}

	cfg := Config{Bucket: bucket}
	for _, opt := range options {
		opt(&cfg)
	}

	return &Disk{
		Client: client,
		Config: cfg,
	}
}

// Put writes JPEG image b to the file at the given path.
func (d *Disk) Put(ctx context.Context, path string, b []byte) error {
	obj := d.Client.Bucket(d.Config.Bucket).Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := io.Copy(w, bytes.NewReader(b)); err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	if d.Config.Public {
		return obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader)
	}

	return nil
}

// URL returns the public URL for the file at the given path.
func (d *Disk) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", d.Config.Bucket, path)
}
