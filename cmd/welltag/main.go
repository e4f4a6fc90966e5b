// Package main provides the CLI entry point for welltag.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/welltag-go/pkg/welltag"
	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/output"
	"github.com/ukaji3/welltag-go/pkg/welltag/tags"
)

// selectionFlags holds the well, analyte and date choices of the export command.
type selectionFlags struct {
	wells          []string
	analytes       []string
	dates          []string
	allWells       bool
	allAnalytes    bool
	allDates       bool
	detectionsOnly bool
}

func (s *selectionFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&s.wells, "well", "w", nil, "Well id to include (repeatable)")
	fs.StringArrayVarP(&s.analytes, "analyte", "a", nil, "Analyte name to include (repeatable, sets row order)")
	fs.StringArrayVarP(&s.dates, "date", "d", nil, "Sampling date to include for historical wells (repeatable)")
	fs.BoolVar(&s.allWells, "all-wells", false, "Include every well")
	fs.BoolVar(&s.allAnalytes, "all-analytes", false, "Include every analyte of the first selected well")
	fs.BoolVar(&s.allDates, "all-dates", false, "Include every sampling date of historical wells")
	fs.BoolVar(&s.detectionsOnly, "detections-only", false, "Drop non-detect analytes from standard tags")
}

// selection resolves the flags against a loaded document.
func (s *selectionFlags) selection(doc *welltag.Document) tags.Selection {
	sel := tags.Selection{
		Wells:          s.wells,
		Analytes:       s.analytes,
		DetectionsOnly: s.detectionsOnly,
	}
	if s.allWells {
		sel.Wells = doc.Index().Order
	}
	if s.allAnalytes && len(sel.Wells) > 0 {
		sel.Analytes = doc.Analytes(sel.Wells[0])
	}
	if doc.Layout() == models.LayoutHistorical {
		sel.Dates = make(map[string][]string)
		for _, well := range sel.Wells {
			if s.allDates {
				for _, opt := range doc.Dates(well) {
					sel.Dates[well] = append(sel.Dates[well], opt.Date)
				}
				continue
			}
			sel.Dates[well] = s.dates
		}
	}
	return sel
}

func main() {
	if err := setupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var schemaPath string

	rootCmd := &cobra.Command{
		Use:   "welltag",
		Short: "Build well sample tag reports from lab spreadsheet exports",
		Long: `welltag reads a lab sample export (.csv or .xlsx), detects its layout,
and writes selected wells and analytes as formatted tag blocks to a new workbook.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "YAML file overriding the source layout offsets")

	load := func(path string) (*welltag.Document, welltag.Options, error) {
		opts := welltag.DefaultOptions()
		if schemaPath != "" {
			schema, err := welltag.LoadSchema(schemaPath)
			if err != nil {
				return nil, opts, err
			}
			opts.Schema = schema
		}
		doc, err := welltag.Load(path, opts)
		if err != nil {
			return nil, opts, fmt.Errorf("loading failed: %w", err)
		}
		return doc, opts, nil
	}

	rootCmd.AddCommand(
		newWellsCmd(load),
		newAnalytesCmd(load),
		newDatesCmd(load),
		newExportCmd(load),
	)
	return rootCmd
}

type loadFunc func(path string) (*welltag.Document, welltag.Options, error)

func newWellsCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "wells [source]",
		Short: "List the wells of a sample export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "layout: %s\n", doc.Layout())
			for _, well := range doc.Wells() {
				fmt.Fprintln(out, well)
			}
			return nil
		},
	}
}

func newAnalytesCmd(load loadFunc) *cobra.Command {
	var well string
	cmd := &cobra.Command{
		Use:   "analytes [source]",
		Short: "List the analytes reported for a well",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := load(args[0])
			if err != nil {
				return err
			}
			names := doc.Analytes(well)
			if names == nil {
				return fmt.Errorf("well not found: %s", well)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&well, "well", "w", "", "Well id")
	_ = cmd.MarkFlagRequired("well")
	return cmd
}

func newDatesCmd(load loadFunc) *cobra.Command {
	var well string
	cmd := &cobra.Command{
		Use:   "dates [source]",
		Short: "List the sampling dates of a well in a historical export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := load(args[0])
			if err != nil {
				return err
			}
			if doc.Layout() != models.LayoutHistorical {
				return fmt.Errorf("%s is not a historical export", args[0])
			}
			for _, opt := range doc.Dates(well) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", opt.Date, opt.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&well, "well", "w", "", "Well id")
	_ = cmd.MarkFlagRequired("well")
	return cmd
}

func newExportCmd(load loadFunc) *cobra.Command {
	var (
		sel        selectionFlags
		outputPath string
		asJSON     bool
		pretty     bool
	)
	cmd := &cobra.Command{
		Use:   "export [source]",
		Short: "Write tags for the selected wells and analytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, opts, err := load(args[0])
			if err != nil {
				return err
			}

			session := tags.NewSession()
			n, err := session.Save(doc.BuildTags(sel.selection(doc)))
			if err != nil {
				return err
			}
			if n == 0 {
				return fmt.Errorf("no tags were created for the selected criteria")
			}
			slog.Info("tags saved", slog.Int("count", n))

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), session.Tags(), pretty); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
			}
			if outputPath == "" {
				if asJSON {
					return nil
				}
				return fmt.Errorf("an output path is required unless --json is set")
			}
			if err := welltag.Export(outputPath, session, opts); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	sel.register(cmd.Flags())
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .xlsx path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tags as JSON to stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func writeJSON(w io.Writer, saved []models.Tag, pretty bool) error {
	data, err := output.ToJSON(saved, pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
