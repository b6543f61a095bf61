// Package commands implements the redfa subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"redfa/internal/render"
	"redfa/regexdfa"
)

// NewConvertCommand creates the convert subcommand.
func NewConvertCommand() *cobra.Command {
	var (
		outFile   string
		format    string
		dotBinary string
		doRender  bool
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "convert <pattern>",
		Short: "Convert a pattern and print DOT or render an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := regexdfa.Convert(args[0])
			if err != nil {
				return err
			}

			if showTable {
				writeStateTable(cmd.OutOrStdout(), a)
			}

			if doRender {
				r := &render.Renderer{DotBinary: dotBinary, Format: format}
				path := outFile
				if path == "" || path == "-" {
					path = "dfa." + format
				}
				if err := r.RenderTo(cmd.Context(), a, path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "image written to %s\n", path)
				return nil
			}
			if showTable {
				return nil
			}

			w := cmd.OutOrStdout()
			if outFile != "" && outFile != "-" {
				f, err := os.Create(outFile)
				if err != nil {
					return fmt.Errorf("cannot create %s: %w", outFile, err)
				}
				defer f.Close()
				w = f
			}
			regexdfa.ExportDOT(w, a)
			if outFile != "" && outFile != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "DOT written to %s\n", outFile)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", render.FormatPNG, "image format for --render (png, svg)")
	cmd.Flags().StringVar(&dotBinary, "dot", "dot", "graphviz binary")
	cmd.Flags().BoolVar(&doRender, "render", false, "render an image via graphviz instead of printing DOT")
	cmd.Flags().BoolVarP(&showTable, "table", "t", false, "print the transition table")

	return cmd
}

// writeStateTable prints the automaton as a transition table, one row per
// state, one column per alphabet symbol.
func writeStateTable(w io.Writer, a *regexdfa.Automaton) {
	alphabet := a.Alphabet()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := table.Row{"state", "accepting"}
	for _, sym := range alphabet {
		header = append(header, string(sym))
	}
	tw.AppendHeader(header)

	for _, s := range a.States {
		accepting := "no"
		if s.Accepting {
			accepting = color.GreenString("yes")
		}
		row := table.Row{fmt.Sprintf("q%d", s.ID), accepting}
		for _, sym := range alphabet {
			if to, ok := s.Step(sym); ok {
				row = append(row, fmt.Sprintf("q%d", to))
			} else {
				row = append(row, "-")
			}
		}
		tw.AppendRow(row)
	}

	tw.Render()
}
