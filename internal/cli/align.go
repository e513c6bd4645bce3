package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/swath/render"
	"github.com/katalvlaran/swath/scoring"
	"github.com/katalvlaran/swath/seq"
	"github.com/katalvlaran/swath/sw"
)

// alignCmd represents the align command.
var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align a query FASTA file against a subject FASTA file",
	Long: `Align reads one sequence from each FASTA file, scores every local
pairing under the configured matrix and gap model, and prints each
co-optimal alignment as a fixed-width report followed by a summary table.

The scoring matrix is a built-in name ("blosum62") or a path to a matrix
file in NCBI format. By default every alignment tied for the maximum
score is reported; --first keeps only the first one and --max caps the
total. The report goes to stdout unless --out names a file; the summary
table always goes to stdout.`,
	RunE: runAlign,
}

// runAlign wires the seq, scoring, sw and render packages together.
func runAlign(cmd *cobra.Command, args []string) error {
	query, err := seq.ReadFile(viper.GetString("query"), seq.Query)
	if err != nil {
		return err
	}
	subject, err := seq.ReadFile(viper.GetString("subject"), seq.Subject)
	if err != nil {
		return err
	}
	if name := viper.GetString("query-name"); name != "" {
		query = query.Rename(name)
	}
	if name := viper.GetString("subject-name"); name != "" {
		subject = subject.Rename(name)
	}

	matrix, err := resolveMatrix(viper.GetString("matrix"))
	if err != nil {
		return err
	}

	opts := sw.DefaultOptions()
	opts.GapOpen = viper.GetFloat64("gap-open")
	opts.GapExtend = viper.GetFloat64("gap-ext")
	opts.FindAll = !viper.GetBool("first")
	opts.MaxAlignments = viper.GetInt("max")
	opts.Workers = viper.GetInt("workers")

	result, err := sw.Align(query, subject, matrix, &opts)
	if err != nil {
		return err
	}

	report := cmd.OutOrStdout()
	if path := viper.GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cli: create report file: %w", err)
		}
		defer f.Close()
		report = f
	}
	if err := render.WriteAll(report, result, nil); err != nil {
		return err
	}

	return render.Summary(cmd.OutOrStdout(), result)
}

// resolveMatrix treats name as a built-in matrix first and falls back to
// parsing it as a file path.
func resolveMatrix(name string) (*scoring.Matrix, error) {
	if m, ok := scoring.Builtin(name); ok {
		return m, nil
	}
	return scoring.ParseFile(name)
}

func init() {
	rootCmd.AddCommand(alignCmd)

	// Input flags
	alignCmd.Flags().StringP("query", "q", "", "path to the query FASTA file")
	alignCmd.Flags().StringP("subject", "s", "", "path to the subject FASTA file")
	alignCmd.Flags().StringP("matrix", "m", "blosum62", "scoring matrix: built-in name or file path")
	alignCmd.Flags().String("query-name", "", "display name overriding the query FASTA header")
	alignCmd.Flags().String("subject-name", "", "display name overriding the subject FASTA header")

	// Alignment flags
	alignCmd.Flags().Float64("gap-open", sw.DefaultGapOpen, "gap opening penalty")
	alignCmd.Flags().Float64("gap-ext", sw.DefaultGapExtend, "gap extension penalty per gapped symbol")
	alignCmd.Flags().Bool("first", false, "report only the first optimal alignment")
	alignCmd.Flags().Int("max", 0, "cap on reported alignments, 0 means unlimited")
	alignCmd.Flags().Int("workers", 1, "goroutines filling the scoring grid")

	// Output flags
	alignCmd.Flags().StringP("out", "o", "", "write the alignment report to this file instead of stdout")

	// Mark required flags
	alignCmd.MarkFlagRequired("query")
	alignCmd.MarkFlagRequired("subject")

	// Bind the parameters to viper
	viper.BindPFlag("query", alignCmd.Flags().Lookup("query"))
	viper.BindPFlag("subject", alignCmd.Flags().Lookup("subject"))
	viper.BindPFlag("matrix", alignCmd.Flags().Lookup("matrix"))
	viper.BindPFlag("query-name", alignCmd.Flags().Lookup("query-name"))
	viper.BindPFlag("subject-name", alignCmd.Flags().Lookup("subject-name"))
	viper.BindPFlag("gap-open", alignCmd.Flags().Lookup("gap-open"))
	viper.BindPFlag("gap-ext", alignCmd.Flags().Lookup("gap-ext"))
	viper.BindPFlag("first", alignCmd.Flags().Lookup("first"))
	viper.BindPFlag("max", alignCmd.Flags().Lookup("max"))
	viper.BindPFlag("workers", alignCmd.Flags().Lookup("workers"))
	viper.BindPFlag("out", alignCmd.Flags().Lookup("out"))
}
