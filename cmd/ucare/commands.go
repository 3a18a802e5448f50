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
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fogfish/ucare"
	"github.com/fogfish/ucare/internal/config"
	"github.com/fogfish/ucare/internal/preview"
	"github.com/fogfish/ucare/internal/transport"
	"github.com/fogfish/ucare/mirror"
	"github.com/fogfish/ucare/mirror/gcs"
	"github.com/fogfish/ucare/mirror/s3"
	"github.com/spf13/cobra"
)

func setup() (config.Config, *ucare.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	api := transport.New(transport.Config{
		Endpoint:  cfg.Endpoint(),
		PublicKey: cfg.PublicKey,
		SecretKey: cfg.SecretKey,
		Timeout:   60 * time.Second,
	})

	return cfg, ucare.New(api, ucare.WithCDNHost(cfg.CDNHost)), nil
}

// file with operations chain given in the wire format
func withChain(client *ucare.Client, id, chain string) (ucare.File, error) {
	ops, err := ucare.ParseChain(chain)
	if err != nil {
		return ucare.File{}, err
	}

	return client.File(id).With(ops...)
}

//------------------------------------------------------------------------------

func urlCmd() *cobra.Command {
	var chain string

	cmd := &cobra.Command{
		Use:   "url ID...",
		Short: "renders CDN url of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := setup()
			if err != nil {
				return err
			}

			for _, id := range args {
				file, err := withChain(client, id, chain)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), file.URL())
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&chain, "ops", "o", "", "operations chain, e.g. crop/200x200/center/-/effect/flip")

	return cmd
}

//------------------------------------------------------------------------------

func storeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store ID...",
		Short: "stores files permanently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := setup()
			if err != nil {
				return err
			}

			files := make([]ucare.File, len(args))
			for i, id := range args {
				files[i] = client.File(id)
			}

			if err := client.StoreAll(cmd.Context(), files...); err != nil {
				return err
			}

			slog.Info("files are stored", "count", len(files))
			return nil
		},
	}
}

//------------------------------------------------------------------------------

func previewCmd() *cobra.Command {
	var (
		chain  string
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "applies operations chain to local image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := ucare.ParseChain(chain)
			if err != nil {
				return err
			}

			return renderPreview(input, output, ops)
		},
	}
	cmd.Flags().StringVarP(&chain, "ops", "o", "", "operations chain")
	cmd.Flags().StringVarP(&input, "input", "i", "", "source image")
	cmd.Flags().StringVar(&output, "output", "preview.jpg", "destination JPEG")
	cmd.MarkFlagRequired("input")

	return cmd
}

func renderPreview(input, output string, ops []ucare.Operation) error {
	fd, err := os.Open(input)
	if err != nil {
		return err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return err
	}

	img, err = preview.Render(img, ops)
	if err != nil {
		return err
	}

	w, err := os.Create(output)
	if err != nil {
		return err
	}
	defer w.Close()

	return jpeg.Encode(w, img, &jpeg.Options{Quality: 93})
}

//------------------------------------------------------------------------------

type disk interface {
	mirror.Disk
	URL(string) string
}

func diskFromConfig(ctx context.Context, cfg config.Config, name string) (disk, error) {
	dcfg, has := cfg.Disks[name]
	if !has {
		return nil, fmt.Errorf("unconfigured disk: %s", name)
	}

	switch dcfg.Provider {
	case s3.Provider:
		d, err := s3.NewAutoWire(ctx, dcfg.Config)
		if err != nil {
			return nil, err
		}
		return d, nil
	case gcs.Provider:
		d, err := gcs.NewAutoWire(ctx, dcfg.Config)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	return nil, fmt.Errorf("unregistered storage provider '%s'", dcfg.Provider)
}

func mirrorCmd() *cobra.Command {
	var (
		chain    string
		diskName string
		path     string
		quality  int
	)

	cmd := &cobra.Command{
		Use:   "mirror ID",
		Short: "copies CDN rendition of file to storage disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := setup()
			if err != nil {
				return err
			}

			file, err := withChain(client, args[0], chain)
			if err != nil {
				return err
			}

			d, err := diskFromConfig(cmd.Context(), cfg, diskName)
			if err != nil {
				return err
			}

			if path == "" {
				path = args[0] + ".jpg"
			}

			m := mirror.New(d, mirror.WithQuality(quality))
			if err := m.Copy(cmd.Context(), file, path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), d.URL(path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&chain, "ops", "o", "", "operations chain")
	cmd.Flags().StringVarP(&diskName, "disk", "d", "", "name of disk from configuration")
	cmd.Flags().StringVarP(&path, "path", "p", "", "destination path at disk (default ID.jpg)")
	cmd.Flags().IntVarP(&quality, "quality", "q", 93, "JPEG quality")
	cmd.MarkFlagRequired("disk")

	return cmd
}

//------------------------------------------------------------------------------

func videoCmd() *cobra.Command {
	var (
		format  string
		size    string
		mode    string
		quality string
		cut     string
		thumbs  int
	)

	cmd := &cobra.Command{
		Use:   "video ID...",
		Short: "converts video files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := videoRequest(format, size, mode, quality, cut, thumbs)
			if err != nil {
				return err
			}

			_, client, err := setup()
			if err != nil {
				return err
			}

			files := make([]ucare.File, len(args))
			for i, id := range args {
				files[i] = client.File(id)
			}

			val, err := client.ConvertVideo(cmd.Context(), req, files...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(val))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "mp4", "video format: mp4, webm, ogg")
	cmd.Flags().StringVarP(&size, "size", "s", "", "size {W}x{H}, either side is optional")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "resize mode: preserve_ratio, change_ratio, scale_crop, add_padding")
	cmd.Flags().StringVarP(&quality, "quality", "q", "", "quality: normal, better, best, lighter, lightest")
	cmd.Flags().StringVar(&cut, "cut", "", "fragment {start}/{end}, e.g. 0:0:10/0:0:20")
	cmd.Flags().IntVar(&thumbs, "thumbs", 1, "number of thumbnails")

	return cmd
}

func videoRequest(format, size, mode, quality, cut string, thumbs int) (ucare.VideoRequest, error) {
	req := ucare.NewVideoRequest(format).WithThumbs(thumbs)
	req.Q = quality

	if size != "" {
		op, err := ucare.ParseOperation(string(ucare.TagResize) + "/" + size)
		if err != nil {
			return ucare.VideoRequest{}, err
		}
		rs := op.(ucare.Resize)
		req = req.Size(rs.Width, rs.Height, mode)
	}

	if cut != "" {
		start, end, _ := strings.Cut(cut, "/")
		req = req.Cut(start, end)
	}

	return req, ucare.ValidateVideoRequest(req)
}
