package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mugiliam/labcatalog/internal/build"
	"github.com/mugiliam/labcatalog/internal/catalog"
	"github.com/mugiliam/labcatalog/internal/config"
	"github.com/mugiliam/labcatalog/internal/render"
	"github.com/mugiliam/labcatalog/internal/server"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var strict, noImages bool
	cmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "Check catalog documents without writing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := catalog.Load(ctx, args...)
			if err != nil {
				return exitError(cmd, err)
			}
			checkImages := config.Config().Build.CheckImages && !noImages
			r := c.Validate(ctx, catalog.ValidateOptions{CheckImages: checkImages})
			printReport(cmd.OutOrStdout(), r)
			if err := r.Err(strict || config.Config().Build.Strict); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	cmd.Flags().BoolVar(&noImages, "no-images", false, "do not check that image files exist")
	return cmd
}

func printReport(w io.Writer, r *catalog.Report) {
	for _, i := range r.Issues {
		fmt.Fprintf(w, "%s\t%s\n", i.Severity, i.Error())
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", len(r.Errors()), len(r.Warnings()))
}

func newBuildCmd() *cobra.Command {
	var outputDir string
	var strict bool
	cmd := &cobra.Command{
		Use:   "build PATH...",
		Short: "Validate catalog documents and write markdown pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := config.Config().Build
			opts := build.Options{
				OutputDir:   bc.OutputDir,
				Strict:      bc.Strict || strict,
				CheckImages: bc.CheckImages,
			}
			if outputDir != "" {
				opts.OutputDir = outputDir
			}
			res, err := build.Run(cmd.Context(), opts, args...)
			if err != nil {
				return exitError(cmd, err)
			}
			for _, f := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var style string
	var width int
	cmd := &cobra.Command{
		Use:   "preview PATH",
		Short: "Render a catalog document in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := catalog.LoadDocument(cmd.Context(), args[0])
			if err != nil {
				return exitError(cmd, err)
			}
			var buf bytes.Buffer
			if err := render.Markdown(&buf, d); err != nil {
				return exitError(cmd, err)
			}
			out, rerr := render.Terminal(buf.String(), render.TerminalOptions{Style: style, WordWrap: width})
			if rerr != nil {
				return exitError(cmd, rerr)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "glamour style (dark, light, notty); default detects the terminal")
	cmd.Flags().IntVar(&width, "width", 120, "word wrap width")
	return cmd
}

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve PATH...",
		Short: "Serve catalog pages and entries over HTTP",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := catalog.Load(ctx, args...)
			if err != nil {
				return exitError(cmd, err)
			}
			r := c.Validate(ctx, catalog.ValidateOptions{CheckImages: config.Config().Build.CheckImages})
			r.Log(ctx)
			if err := r.Err(false); err != nil {
				return exitError(cmd, err)
			}

			s, serr := server.CreateNewServer(c)
			if serr != nil {
				return exitError(cmd, serr)
			}
			s.MountHandlers()
			if listen == "" {
				listen = config.Config().Server.Listen
			}
			return s.ListenAndServe(ctx, listen)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}
