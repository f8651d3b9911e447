package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardwright/internal/normalizer"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize the raw card dataset",
	Long: `Normalize reads the raw card dataset and the gender table, drops excluded and
retired cards, and writes the normalized card list as JSON.

Nothing is written unless every card passes validation.

Examples:
  cardwright normalize
  cardwright normalize -i mario-cards.json -g cards/genders.json -o cards/cards.json
  cardwright normalize -x "Ancient Lookout" -x "Templated Hero"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := loadInputs(cmd)
		if err != nil {
			return err
		}

		n := normalizer.New(in.genders,
			normalizer.WithExclusions(in.exclusions),
			normalizer.WithLogger(log.StandardLogger()))

		cards, _, err := n.Run(in.records)
		if err != nil {
			return fmt.Errorf("normalization failed: %w", err)
		}

		output := flagOr(cmd, "output", cfg.Output)
		if output == "" || output == "-" {
			return normalizer.Write(cmd.OutOrStdout(), cards)
		}
		if err := writeFile(output, func(w io.Writer) error { return normalizer.Write(w, cards) }); err != nil {
			return err
		}

		log.WithFields(log.Fields{"path": output, "cards": len(cards)}).Info("normalized cards written")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(normalizeCmd)

	addInputFlags(normalizeCmd)
	normalizeCmd.Flags().StringP("output", "o", "", "Output file, or - for stdout")
}

// writeFile creates path and its directory and hands the file to write
func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return err
	}
	return file.Close()
}
