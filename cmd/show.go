package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardwright/internal/display"
	"github.com/arcanaland/cardwright/internal/normalizer"
)

var showCmd = &cobra.Command{
	Use:   "show [card_name]",
	Short: "Display one normalized card",
	Long: `Show normalizes the dataset and prints a single card the way it will appear
in the output, with an attribute colour banner when the terminal supports it.

Examples:
  cardwright show "Test Wolf"
  cardwright show -i mario-cards.json "Firebolt"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

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

		for _, c := range cards {
			if c.Common().Name == name {
				return display.Render(cmd.OutOrStdout(), c, terminalWidth())
			}
		}
		return fmt.Errorf("card not found: %s", name)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addInputFlags(showCmd)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
