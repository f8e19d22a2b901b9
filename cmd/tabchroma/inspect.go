package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/sonido-tabs/algorithms/chroma"
	"github.com/RyanBlaney/sonido-tabs/algorithms/stats"
	"github.com/RyanBlaney/sonido-tabs/corpus"
)

func newStatsCmd(stdout io.Writer) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats <corpus.json>",
		Short: "Print summary statistics of a serialized corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			rows, err := corpus.LoadJSON(args[0])
			if err != nil {
				return err
			}

			vectors := make([]chroma.Vector, len(rows))
			labels := make([]string, len(rows))
			for i, r := range rows {
				vectors[i] = r.Counts
				labels[i] = r.Label
			}

			summary, err := stats.Summarize(vectors, labels)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", args[0], err)
			}

			if asJSON {
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return printSummary(stdout, summary)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

func printSummary(w io.Writer, s *stats.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "observations\t%d\n", s.Observations)
	fmt.Fprintf(tw, "total notes\t%.0f\n", s.TotalNotes)
	fmt.Fprintf(tw, "label entropy\t%.3f bits\n\n", s.LabelEntropy)

	fmt.Fprintln(tw, "pitch class\tmean\tstd dev")
	for i, name := range chroma.PitchClassNames() {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\n", name, s.Mean[i], s.StdDev[i])
	}

	fmt.Fprintln(tw, "\nlabel\trows")
	for _, lc := range s.Labels {
		fmt.Fprintf(tw, "%s\t%d\n", lc.Label, lc.Count)
	}

	fmt.Fprintln(tw, "\ninterval bin\tmean magnitude")
	for k, m := range s.MeanIntervalSpectrum {
		fmt.Fprintf(tw, "%d\t%.3f\n", k, m)
	}
	return tw.Flush()
}

func newValidateCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <corpus.json>",
		Short: "Check a serialized corpus against the corpus JSON schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			violations, err := corpus.ValidateJSON(f)
			if err != nil {
				return err
			}
			for _, v := range violations {
				fmt.Fprintln(stdout, v)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%s: %d schema violations", args[0], len(violations))
			}

			fmt.Fprintf(stdout, "%s: valid\n", args[0])
			return nil
		},
	}
}
