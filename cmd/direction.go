package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bridgetgarnier/1Delongation/internal/diagram"
	"github.com/bridgetgarnier/1Delongation/internal/fault"
	"github.com/bridgetgarnier/1Delongation/internal/transect"
	"github.com/spf13/cobra"
)

var (
	directionInput string
	directionPlot  string
)

var directionCmd = &cobra.Command{
	Use:   "direction",
	Short: "Find the azimuth of maximum elongation",
	Long: `Sweep candidate azimuths 0-180° at one-degree steps and score each by
the catalog-average apparent-offset ratio |cos(dipDirection − azimuth)|.

The curve is printed so the analyst can judge how sharp the maximum is
before committing to an azimuth for 'analyze'.

Examples:
  elong direction --input faults.csv
  elong direction --input faults.csv --plot direction.png`,
	RunE: runDirection,
}

func init() {
	rootCmd.AddCommand(directionCmd)

	directionCmd.Flags().StringVarP(&directionInput, "input", "i", "", "Fault catalog CSV [required]")
	directionCmd.Flags().StringVar(&directionPlot, "plot", "", "Write the sweep curve to a PNG file")
	directionCmd.MarkFlagRequired("input")
}

func runDirection(cmd *cobra.Command, args []string) error {
	set, err := fault.Load(directionInput)
	if err != nil {
		return err
	}
	slog.Debug("catalog loaded", "faults", len(set))

	sw := transect.FindDirection(set)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ELONGATION DIRECTION SEARCH")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Print(diagram.DirectionCurve(sw.Scores, sw.Best))
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  MAXIMUM ELONGATION AZIMUTH = %03d°      ║\n", sw.Best)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if directionPlot != "" {
		if err := diagram.ExportDirectionPlot(sw.Scores, sw.Best, directionPlot); err != nil {
			return fmt.Errorf("writing %s: %w", directionPlot, err)
		}
		fmt.Printf("  Sweep curve written to %s\n\n", directionPlot)
	}
	return nil
}
