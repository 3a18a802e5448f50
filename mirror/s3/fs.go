//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package s3

import (
	"io"

	"github.com/fogfish/stream"
)

// NewFS mounts the bucket as file system
func NewFS(bucket string) (FileSystem, error) {
	fsys, err := stream.New[Meta](bucket)
	if err != nil {
		return nil, err
	}

	return create(func(key string, meta *Meta) (io.WriteCloser, error) {
		fd, err := fsys.Create(key, meta)
		if err != nil {
			return nil, err
		}
		return fd, nil
	}), nil
}

type create func(string, *Meta) (io.WriteCloser, error)

func (f create) Create(key string, meta *Meta) (io.WriteCloser, error) { return f(key, meta) }
