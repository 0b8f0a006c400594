package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/HaKr/svgrs/internal/logging"
	"github.com/HaKr/svgrs/internal/scene"
	"github.com/HaKr/svgrs/svgelem"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

type renderOptions struct {
	output  string
	format  string
	charset string
	prolog  bool
}

// NewRootCmd returns the svgrs command tree.
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "svgrs",
		Short: "Write SVG documents from scene files",
		Long: `svgrs turns a declarative scene, written in TOML or YAML,
into SVG markup.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newRenderCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "svgrs %s\n", Version)
		},
	}
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <scene-file>",
		Short: "Render a scene file to SVG",
		Long: `Render decodes a scene file and writes the resulting SVG document
to standard output, or to the file given with --output.
The format is guessed from the file extension unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of standard output")
	cmd.Flags().StringVar(&opts.format, "format", "", "Scene format: toml or yaml")
	cmd.Flags().StringVar(&opts.charset, "charset", "", "Encoding of the scene file (default UTF-8)")
	cmd.Flags().BoolVar(&opts.prolog, "prolog", false, "Start the output with an XML declaration")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	logger := logging.GetLogger("render")

	var (
		format scene.Format
		err    error
	)
	if opts.format != "" {
		format, err = scene.ParseFormat(opts.format)
	} else {
		format, err = scene.FormatFromPath(path)
	}
	if err != nil {
		return err
	}

	s, err := scene.Load(path, format, opts.charset)
	if err != nil {
		return err
	}
	doc, err := scene.Build(s)
	if err != nil {
		return fmt.Errorf("scene %s: %w", path, err)
	}

	if opts.output == "" {
		return writeDocument(cmd.OutOrStdout(), doc, opts.prolog)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err = writeDocument(f, doc, opts.prolog); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Info().Str("output", opts.output).Msg("Document written")
	return nil
}

func writeDocument(w io.Writer, doc *svgelem.Document, prolog bool) error {
	bw := bufio.NewWriter(w)
	if prolog {
		if _, err := bw.WriteString(xmlProlog); err != nil {
			return err
		}
	}
	if err := doc.Write(bw); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
