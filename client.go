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
	"encoding/json"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Actions of REST API
const (
	ActionRoot         = "root"
	ActionAccount      = "account"
	ActionFiles        = "files"
	ActionFile         = "file"
	ActionStore        = "store"
	ActionDelete       = "delete"
	ActionConvertVideo = "convert_video"
)

// HTTP methods used by actions
const (
	MethodGet    = "get"
	MethodPost   = "post"
	MethodPut    = "put"
	MethodDelete = "delete"
)

// Parameters of actions
const (
	ParamFileID = "file_id"
	ParamPaths  = "paths"
	ParamStore  = "store"
)

// DefaultCDNHost is the default host of CDN
const DefaultCDNHost = "ucarecdn.com"

// Requester is the transport to REST API. It executes the action with
// HTTP method and parameters, returning raw response body.
type Requester interface {
	Request(ctx context.Context, action, method string, params map[string]string) (json.RawMessage, error)
}

// Client of the service
type Client struct {
	api         Requester
	host        string
	concurrency int
}

// Option configures the client
type Option func(*Client)

// WithCDNHost overrides the CDN host
func WithCDNHost(host string) Option {
	return func(c *Client) { c.host = host }
}

// WithConcurrency bounds concurrent requests of batch operations
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates client on top of transport
func New(api Requester, opts ...Option) *Client {
	if api == nil {
		panic("ucare: transport is not defined")
	}

	c := &Client{
		api:         api,
		host:        DefaultCDNHost,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Host of CDN used by the client
func (c *Client) Host() string { return c.host }

// File returns the CDN file with given id
func (c *Client) File(id string) File {
	return NewFile(id, c.host, c.api)
}

// StoreAll stores files concurrently. It returns the first failure,
// pending requests are cancelled.
func (c *Client) StoreAll(ctx context.Context, files ...File) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, file := range files {
		f := file
		g.Go(func() error {
			return f.Store(ctx)
		})
	}

	return g.Wait()
}

// ConvertVideo submits the conversion job for files, the encoding is
// defined by the request. Converted files are stored.
func (c *Client) ConvertVideo(ctx context.Context, req VideoEncodingRequest, files ...File) (json.RawMessage, error) {
	if err := ValidateVideoRequest(req); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, invalid(ActionConvertVideo, "no files to convert")
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = VideoPath(f.ID(), req)
	}

	return c.api.Request(ctx, ActionConvertVideo, MethodPost,
		map[string]string{
			ParamPaths: strings.Join(paths, ","),
			ParamStore: "1",
		},
	)
}
