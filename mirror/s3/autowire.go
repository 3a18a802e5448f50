//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//
// Adapted from github.com/bounoable/godrive
//

package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
)

const (
	// Provider is the provider name for Amazon S3.
	Provider = "s3"
)

// NewAutoWire creates a new Amazon S3 disk from configuration map.
// Credentials come from the default AWS credentials chain. The region is
// resolved from the chain when it is not configured.
func NewAutoWire(ctx context.Context, cfg map[string]any) (*Disk, error) {
	if cfg == nil {
		cfg = make(map[string]any)
	}

	bucket, ok := cfg["bucket"].(string)
	if !ok || bucket == "" {
		return nil, InvalidConfigValueError{
			Key:     "bucket",
			Details: "storage bucket must be set",
		}
	}

	rcache, ok := cfg["cacheControl"]
	if ok {
		if _, ok := rcache.(string); !ok {
			return nil, InvalidConfigValueError{
				Key:     "cacheControl",
				Details: fmt.Sprintf("cache control must be a string but it is '%T'", rcache),
			}
		}
	}
	cacheControl, _ := rcache.(string)

	region, _ := cfg["region"].(string)
	if region == "" {
		awscfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		region = awscfg.Region
	}

	if region == "" {
		return nil, InvalidConfigValueError{
			Key:     "region",
			Details: "region must be set",
		}
	}

	fs, err := NewFS(bucket)
	if err != nil {
		return nil, err
	}

	return NewDisk(fs, region, bucket, CacheControl(cacheControl)), nil
}

// InvalidConfigValueError means the configuration has an invalid config value.
type InvalidConfigValueError struct {
	Key     string
	Details string
}

func (err InvalidConfigValueError) Error() string {
	return fmt.Sprintf("invalid configuration value for key '%s': %s", err.Key, err.Details)
}
