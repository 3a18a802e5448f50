//
// Copyright (C) 2023 Dmitry Kolesnikov
//
// This file may be modified and distributed under the terms
// of the MIT license.  See the LICENSE file for details.
// https://github.com/fogfish/ucare
//

package main

import (
	"context"
	"os"

	_ "github.com/fogfish/logger/v3"
	"github.com/fogfish/logger/x/xlog"
	"github.com/spf13/cobra"
)

//
//	ucare url 0c5a2a28-... --ops crop/200x200/center/-/effect/grayscale
//	ucare store 0c5a2a28-... 9e4b11c3-...
//	ucare preview --input photo.jpg --ops scale_crop/128x128/center --output small.jpg
//	ucare mirror 0c5a2a28-... --ops resize/640x --disk archive --path photo/640.jpg
//	ucare video 0c5a2a28-... --format mp4 --size 640x --thumbs 2
//

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ucare",
	Short:        "command line client of file storage and image/video CDN",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_UCARE"), "path to YAML configuration")

	rootCmd.AddCommand(
		urlCmd(),
		storeCmd(),
		previewCmd(),
		mirrorCmd(),
		videoCmd(),
	)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		xlog.Emergency("ucare failed", err)
	}
}
