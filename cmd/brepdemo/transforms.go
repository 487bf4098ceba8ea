package main

import (
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/spf13/cobra"
)

func newTransformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transforms",
		Short: "Print distance, translation, rotation and scaling of two sample points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runTransforms(cmd.OutOrStdout())
			return nil
		},
	}
}

func runTransforms(w io.Writer) {
	p1 := geom.PtID(1, 0, 0, 0)
	p2 := geom.PtID(2, 1, 1, 1)

	fmt.Fprintf(w, "distance(p1, p2) = %.4f\n", geom.Distance(p1, p2))
	printPoint(w, "translate(p1, 1, 2, 3)", geom.Translate(p1, 1, 2, 3))
	printPoint(w, "rotateZ(p2, 90°)", geom.RotateZ(p2, math.Pi/2))
	printPoint(w, "scale(p1, 2)", geom.Scale(p1, 2))
}

func printPoint(w io.Writer, label string, p geom.Point) {
	fmt.Fprintf(w, "%s = P%d(%.4f, %.4f, %.4f)\n", label, p.ID, p.X, p.Y, p.Z)
}
