package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/brepgo"
	"github.com/hupe1980/brepgo/algo"
	"github.com/spf13/cobra"
)

func newPartsCmd(gf *globalFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "parts",
		Short: "Build every part of the catalogue and check its topology",
		Long: `Builds each part of the catalogue in a model of its own, runs the
topology checker and prints the entity counts.

Without --config the built-in catalogue (bolt, washer) is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), gf)
			if err != nil {
				return err
			}
			cat, err := LoadCatalogue(configPath)
			if err != nil {
				return err
			}
			return runParts(cmd.Context(), cmd.OutOrStdout(), logger, cat)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML part catalogue")

	return cmd
}

// runParts builds every part. Partial sweeps are reported and the part is
// still checked; any other sweep error aborts.
func runParts(ctx context.Context, w io.Writer, logger *brepgo.Logger, cat *Catalogue) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, part := range cat.Parts {
		m := brepgo.New(brepgo.WithLogger(logger), brepgo.WithName(part.Name))

		for _, f := range part.Features {
			if err := buildFeature(ctx, m, f); err != nil {
				if !errors.Is(err, brepgo.ErrPartialSweep) {
					return fmt.Errorf("%s/%s: %w", part.Name, f.Name, err)
				}
				fmt.Fprintf(w, "%s/%s: %v\n", part.Name, f.Name, err)
			}
		}

		rep := m.Check(ctx)
		st := m.Stats()

		fmt.Fprintf(w, "part %s: %d vertices, %d edges, %d faces\n", part.Name, st.Vertices, st.Edges, st.Faces)
		fmt.Fprint(w, rep)
	}

	return nil
}

func buildFeature(ctx context.Context, m *brepgo.Model, f Feature) error {
	pts, err := f.Profile.Points()
	if err != nil {
		return err
	}

	switch f.Sweep {
	case "extrude":
		_, err = m.Extrude(ctx, pts, f.Distance, f.SweepOptions()...)
	case "revolve":
		_, err = m.Revolve(ctx, pts, algo.ZAxis, f.AngleRadians(), f.SweepOptions()...)
	default:
		err = fmt.Errorf("unknown sweep %q", f.Sweep)
	}
	return err
}
