//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/fogfish/faults"
	"github.com/fogfish/gurl/v2/http"
	ƒ "github.com/fogfish/gurl/v2/http/recv"
	ø "github.com/fogfish/gurl/v2/http/send"
)

const (
	ErrTransport     = faults.Type("transport failure")
	errUnknownAction = faults.Safe1[string]("unknown action (%s)")
	errUnknownMethod = faults.Safe1[string]("unknown method (%s)")
	errMissingParam  = faults.Safe1[string]("missing parameter (%s)")
)

// Versioned media type of REST API
const acceptAPI = "application/vnd.uploadcare-v0.7+json"

// Config of the transport
type Config struct {
	// Endpoint of REST API, e.g. https://api.uploadcare.com
	Endpoint  string
	PublicKey string
	SecretKey string
	Timeout   time.Duration
}

// Transport executes actions of REST API
type Transport struct {
	http.Stack
	endpoint string
	auth     string
}

func New(cfg Config) *Transport {
	client := http.Client()
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	return &Transport{
		Stack:    http.New(http.WithClient(client)),
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		auth:     "Uploadcare.Simple " + cfg.PublicKey + ":" + cfg.SecretKey,
	}
}

// Request executes action using HTTP method. Parameters are either
// substituted into the path of action, or sent as query (get, delete)
// or JSON body (post, put).
func (t *Transport) Request(ctx context.Context, action, method string, params map[string]string) (json.RawMessage, error) {
	act, has := actions[action]
	if !has {
		return nil, errUnknownAction.With(nil, action)
	}

	path, rest, err := act.bind(params)
	if err != nil {
		return nil, err
	}

	uri := t.endpoint + path

	slog.Debug("requesting api",
		slog.String("action", action),
		slog.String("method", method),
		slog.String("uri", uri),
	)

	head := []http.Arrow{
		ø.URI(uri),
		ø.Accept.Set(acceptAPI),
		ø.Authorization.Set(t.auth),
	}

	var req http.Arrow
	switch strings.ToLower(method) {
	case "get":
		req = http.GET(append(head, query(rest), ƒ.Status.OK)...)
	case "delete":
		req = http.DELETE(append(head, query(rest), ƒ.Status.OK)...)
	case "post":
		req = http.POST(append(head, body(act, rest), ƒ.Status.OK)...)
	case "put":
		req = http.PUT(append(head, body(act, rest), ƒ.Status.OK)...)
	default:
		return nil, errUnknownMethod.With(nil, method)
	}

	val, err := http.IO[json.RawMessage](t.WithContext(ctx), req)
	if err != nil {
		slog.Debug("api request failed",
			slog.String("action", action),
			slog.String("uri", uri),
			"error", err,
		)
		return nil, ErrTransport.New(err)
	}

	return *val, nil
}

func query(rest map[string]string) http.Arrow {
	if len(rest) == 0 {
		return nop
	}
	return ø.Params(rest)
}

func body(act action, rest map[string]string) http.Arrow {
	if len(rest) == 0 {
		return nop
	}

	return http.Join(
		ø.ContentType.JSON,
		ø.Send(act.payload(rest)),
	)
}

func nop(*http.Context) error { return nil }
