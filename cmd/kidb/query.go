package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leengari/kidb/internal/api"
	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/engine"
	"github.com/leengari/kidb/internal/query/filter"
)

// parseFilters turns repeated field=value flags into criteria.
// Repeating a field widens its allowed set.
func parseFilters(flags []string) (filter.Criteria, error) {
	criteria := filter.Criteria{}
	for _, raw := range flags {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid filter %q: expected field=value", raw)
		}
		field, err := data.ParseField(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		criteria = criteria.Add(field, value)
	}
	return criteria, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) newEngine() *engine.Engine {
	return engine.New(a.table, engine.NewLoggingObserver(a.logger))
}

func newLigandsCmd(a *app) *cobra.Command {
	var (
		maxLen  int
		filters []string
	)

	cmd := &cobra.Command{
		Use:   "ligands",
		Short: "List ligand names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseFilters(filters)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.newEngine().Ligands(criteria, maxLen))
		},
	}

	cmd.Flags().IntVar(&maxLen, "max-len", -1, "longest name to list, <= 0 for no bound")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field=value, repeatable")
	return cmd
}

func newReceptorsCmd(a *app) *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "receptors",
		Short: "List receptor names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseFilters(filters)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), a.newEngine().ListUniqueValues(data.FieldReceptor, criteria))
		},
	}

	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field=value, repeatable")
	return cmd
}

func newKiCmd(a *app) *cobra.Command {
	var (
		deviation float64
		filters   []string
	)

	cmd := &cobra.Command{
		Use:   "ki <ligand>",
		Short: "Summarize Ki per receptor for one ligand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseFilters(filters)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("deviation") {
				deviation = a.cfg.Outlier.DefaultDeviation
			}
			result := a.newEngine().Summarize(args[0], criteria, deviation)
			return writeJSON(cmd.OutOrStdout(), api.NewKiResponse(result))
		},
	}

	cmd.Flags().Float64Var(&deviation, "deviation", 0, "outlier band width in standard deviations, 0 keeps every row")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "field=value, repeatable")
	return cmd
}
