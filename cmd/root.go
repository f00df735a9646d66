package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bridgetgarnier/1Delongation/internal/version"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "elong",
	Short: "1-D fault-strain (elongation) estimator",
	Long: `elong - one-dimensional elongation from fault catalogs

A CLI tool for estimating tectonic strain along a measured geological
transect from a catalog of observed fault planes.

The workflow mirrors the field method:
  direction  Sweep candidate azimuths and plot the direction-search
             curve; the analyst reads off the maximum-elongation azimuth
  rank       Rank faults by heave and plot log(heave) vs log(rank);
             the analyst picks the linear regression window
  analyze    Convert offsets to heaves along the chosen azimuth, sum
             them, and report percent elongation with and without the
             small-fault fractal correction

Displacement conversion follows the published apparent/true displacement
relations (Xu et al., 2009); the small-fault extrapolation follows
Marrett & Allmendinger (1992).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}),
		))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   elong v%-49s║\n", version.Version)
		fmt.Println("  ║   1-D Elongation From Fault Catalogs                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Estimates percent elongation along a transect from measured")
		fmt.Println("  fault offsets, with a fractal correction for faults too")
		fmt.Println("  small to observe directly.")
		fmt.Println()
		fmt.Println("  Use 'elong --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable per-stage diagnostic logging")
}
