//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package transport

import (
	"strings"
)

// action is the path template of REST API, {param} is substituted
// from request parameters. Parameters listed in lists are comma
// separated values sent as JSON arrays.
type action struct {
	path  string
	lists []string
}

var actions = map[string]action{
	"root":          {path: "/"},
	"account":       {path: "/account/"},
	"files":         {path: "/files/"},
	"file":          {path: "/files/{file_id}/"},
	"store":         {path: "/files/{file_id}/storage/"},
	"delete":        {path: "/files/{file_id}/storage/"},
	"convert_video": {path: "/convert/video/", lists: []string{"paths"}},
}

// binds parameters into path, returns unbound parameters
func (act action) bind(params map[string]string) (string, map[string]string, error) {
	path := act.path
	rest := map[string]string{}

	for key, val := range params {
		ref := "{" + key + "}"
		if strings.Contains(path, ref) {
			path = strings.ReplaceAll(path, ref, val)
			continue
		}
		rest[key] = val
	}

	if a := strings.Index(path, "{"); a != -1 {
		b := strings.Index(path[a:], "}")
		return "", nil, errMissingParam.With(nil, path[a+1:a+b])
	}

	return path, rest, nil
}

func (act action) payload(rest map[string]string) map[string]any {
	doc := make(map[string]any, len(rest))
	for key, val := range rest {
		doc[key] = val
	}

	for _, key := range act.lists {
		if val, has := rest[key]; has {
			doc[key] = strings.Split(val, ",")
		}
	}

	return doc
}
