package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardwright/internal/gender"
	"github.com/arcanaland/cardwright/internal/source"
)

// addInputFlags registers the dataset flags shared by normalize, validate and show
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Raw card dataset (JSON array)")
	cmd.Flags().StringP("genders", "g", "", "Gender table (JSON or YAML)")
	cmd.Flags().StringSliceP("exclude", "x", nil, "Card name to drop before shaping (repeatable)")
}

// flagOr returns the flag value when it was set on the command line
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}

type inputs struct {
	records    []source.RawCard
	genders    *gender.Table
	exclusions []string
}

// loadInputs reads the raw dataset and gender table named by flags or config
func loadInputs(cmd *cobra.Command) (*inputs, error) {
	records, err := source.LoadFile(flagOr(cmd, "input", cfg.Input))
	if err != nil {
		return nil, err
	}

	genders, err := gender.LoadFile(flagOr(cmd, "genders", cfg.Genders))
	if err != nil {
		return nil, err
	}

	extra, _ := cmd.Flags().GetStringSlice("exclude")
	exclusions := append(append([]string{}, cfg.Exclude...), extra...)

	return &inputs{records: records, genders: genders, exclusions: exclusions}, nil
}
