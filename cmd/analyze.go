package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/bridgetgarnier/1Delongation/internal/diagram"
	"github.com/bridgetgarnier/1Delongation/internal/fault"
	"github.com/bridgetgarnier/1Delongation/internal/fractal"
	"github.com/bridgetgarnier/1Delongation/internal/transect"
	"github.com/spf13/cobra"
)

var (
	// Heave inputs
	analyzeInput   string
	analyzeAzimuth float64
	analyzeIDs     []int
	analyzeWindow  float64

	// Transect projection inputs (from the analyst's closure sketch)
	analyzeHalfLength float64
	analyzeAa         float64
	analyzeAb         float64
	analyzeBa         float64
	analyzeBb         float64

	// Small-fault extrapolation inputs
	analyzeBounded string
	analyzeRankLo  int
	analyzeRankHi  int

	analyzePlotDir string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute percent elongation along a chosen azimuth",
	Long: `Convert each fault's measured offset into a true displacement, project
it onto the chosen elongation azimuth, sum the resulting heaves, and
report the percent elongation of the transect.

The azimuth, the fault subset (±25° of the azimuth by convention), the
regression rank window, and the four triangle-closure angles are analyst
decisions read off the 'direction' and 'rank' plots and a hand sketch;
they are inputs here, never derived.

When --bounded names a catalog that includes the bounding (zero-offset)
faults, the fractal frequency-size regression over --rank-lo..--rank-hi
adds the modeled contribution of faults too small to observe, and a
revised elongation is reported alongside the baseline.

Examples:
  # Baseline only, subset picked by the ±25° convention
  elong analyze -i faults.csv -a 135 --window 25 \
      --half-length 81 --aa 53 --ab 101 --ba 23 --bb 78

  # Explicit fault subset and small-fault correction
  elong analyze -i faults.csv -a 135 --ids 2,3,5,8 \
      --half-length 81 --aa 53 --ab 101 --ba 23 --bb 78 \
      --bounded faults_bounded.csv --rank-lo 3 --rank-hi 14`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Fault catalog CSV [required]")
	analyzeCmd.Flags().Float64VarP(&analyzeAzimuth, "azimuth", "a", 0, "Elongation azimuth in degrees [required]")
	analyzeCmd.Flags().IntSliceVar(&analyzeIDs, "ids", nil, "Fault numbers to include (explicit analyst row filter)")
	analyzeCmd.Flags().Float64Var(&analyzeWindow, "window", 0, "Include faults with dip direction within ±window° of the azimuth (ignored when --ids is set)")

	analyzeCmd.Flags().Float64Var(&analyzeHalfLength, "half-length", 0, "Half of the measured transect length (m) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeAa, "aa", 0, "First closure triangle, angle a (deg) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeAb, "ab", 0, "First closure triangle, angle b (deg) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeBa, "ba", 0, "Second closure triangle, angle a (deg) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeBb, "bb", 0, "Second closure triangle, angle b (deg) [required]")

	analyzeCmd.Flags().StringVar(&analyzeBounded, "bounded", "", "Catalog CSV with bounding faults, enables the small-fault correction")
	analyzeCmd.Flags().IntVar(&analyzeRankLo, "rank-lo", 0, "First rank of the regression window (with --bounded)")
	analyzeCmd.Flags().IntVar(&analyzeRankHi, "rank-hi", 0, "Last rank of the regression window (with --bounded)")

	analyzeCmd.Flags().StringVar(&analyzePlotDir, "plot-dir", "", "Directory for PNG diagnostics")

	analyzeCmd.MarkFlagRequired("input")
	analyzeCmd.MarkFlagRequired("azimuth")
	analyzeCmd.MarkFlagRequired("half-length")
	analyzeCmd.MarkFlagRequired("aa")
	analyzeCmd.MarkFlagRequired("ab")
	analyzeCmd.MarkFlagRequired("ba")
	analyzeCmd.MarkFlagRequired("bb")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeHalfLength <= 0 {
		return fmt.Errorf("half-length must be positive, got %.4g", analyzeHalfLength)
	}
	for _, ang := range []struct {
		name string
		v    float64
	}{{"aa", analyzeAa}, {"ab", analyzeAb}, {"ba", analyzeBa}, {"bb", analyzeBb}} {
		if ang.v <= 0 || ang.v >= 180 {
			return fmt.Errorf("closure angle %s = %.4g outside (0,180)", ang.name, ang.v)
		}
	}
	if analyzeBounded != "" && (analyzeRankLo < 1 || analyzeRankHi <= analyzeRankLo) {
		return fmt.Errorf("--bounded requires a rank window: --rank-lo >= 1 and --rank-hi > --rank-lo")
	}

	set, err := fault.Load(analyzeInput)
	if err != nil {
		return err
	}

	subset := set
	switch {
	case len(analyzeIDs) > 0:
		subset, err = set.ByID(analyzeIDs)
		if err != nil {
			return err
		}
	case analyzeWindow > 0:
		subset = transect.FilterByDirection(set, analyzeAzimuth, analyzeWindow)
		if len(subset) == 0 {
			return fmt.Errorf("no faults within ±%.0f° of azimuth %.1f°", analyzeWindow, analyzeAzimuth)
		}
	}
	slog.Debug("subset selected", "catalog", len(set), "subset", len(subset))

	res := transect.Process(subset, analyzeAzimuth)
	lf := transect.ProjectedLength(analyzeHalfLength, analyzeAa, analyzeAb, analyzeBa, analyzeBb)

	printAnalyzeHeader(len(set), len(subset), lf)
	printFaultTable(res)

	baseline, err := transect.PercentElongation(lf, res.Heave)
	if errors.Is(err, transect.ErrDegenerateProjection) {
		fmt.Printf("  RESULT: elongation undefined — %v\n\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("  ╔═════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  BASELINE ELONGATION e = %.3f %%          \n", baseline)
	fmt.Printf("  ╚═════════════════════════════════════════════╝\n")
	fmt.Println()

	if analyzeBounded == "" {
		return nil
	}
	return runExtrapolation(res, lf, baseline)
}

// runExtrapolation adds the modeled contribution of unobserved small
// faults from the bounded catalog and reports the revised elongation.
func runExtrapolation(res transect.Result, lf, baseline float64) error {
	bounded, err := fault.Load(analyzeBounded)
	if err != nil {
		return err
	}
	full := transect.Process(bounded, res.Azimuth)
	slog.Debug("bounded catalog processed", "faults", len(full.Faults), "excluded", full.Excluded)

	samples := make([]fractal.Sample, len(full.Faults))
	for i, d := range full.Faults {
		samples[i] = fractal.Sample{ID: d.Fault.ID, Heave: d.Heave}
	}
	ranked := fractal.Rank(samples)

	fit, err := fractal.Extrapolate(ranked, analyzeRankLo, analyzeRankHi)

	fmt.Println("SMALL-FAULT EXTRAPOLATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rank window:\t[%d, %d]\n", analyzeRankLo, analyzeRankHi)
	fmt.Fprintf(w, "  Regression slope (C):\t%.4f\n", fit.Slope)
	fmt.Fprintf(w, "  Smallest windowed heave (hn):\t%.4f m\n", fit.Smallest)
	w.Flush()

	if analyzePlotDir != "" {
		heaves := make([]float64, len(ranked))
		for i, r := range ranked {
			heaves[i] = r.Heave
		}
		target := filepath.Join(analyzePlotDir, "frequency-size.png")
		if perr := diagram.ExportRankPlot(heaves, fit.Slope, fit.Intercept, err == nil, target); perr != nil {
			return fmt.Errorf("writing %s: %w", target, perr)
		}
		fmt.Printf("  Frequency-size plot written to %s\n", target)
	}

	if errors.Is(err, fractal.ErrInvalidModel) {
		fmt.Println()
		fmt.Printf("  REVISED ESTIMATE UNAVAILABLE: %v\n", err)
		fmt.Println("  Larger faults must be rarer for the power-law extrapolation")
		fmt.Printf("  to hold; only the baseline e = %.3f %% stands.\n", baseline)
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  Extrapolated small-fault length (he):\t%.4f m\n", fit.Extension)
	w.Flush()
	fmt.Println()

	revised, err := transect.PercentElongation(lf, res.Heave+fit.Extension)
	if errors.Is(err, transect.ErrDegenerateProjection) {
		fmt.Printf("  RESULT: revised elongation undefined — %v\n\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("  ╔═════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  REVISED ELONGATION er = %.3f %%          \n", revised)
	fmt.Printf("  ╚═════════════════════════════════════════════╝\n")
	fmt.Println()
	return nil
}

func printAnalyzeHeader(catalog, subset int, lf float64) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TRANSECT ELONGATION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Elongation azimuth:\t%06.2f°\n", analyzeAzimuth)
	fmt.Fprintf(w, "  Faults in catalog:\t%d\n", catalog)
	fmt.Fprintf(w, "  Faults in subset:\t%d\n", subset)
	fmt.Fprintf(w, "  Half transect length:\t%.2f m\n", analyzeHalfLength)
	fmt.Fprintf(w, "  Closure angles (Aa/Ab/Ba/Bb):\t%.1f/%.1f/%.1f/%.1f°\n",
		analyzeAa, analyzeAb, analyzeBa, analyzeBb)
	fmt.Fprintf(w, "  Projected length (Lf):\t%.3f m\n", lf)
	w.Flush()
	fmt.Println()
}

func printFaultTable(res transect.Result) {
	fmt.Println("PER-FAULT GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Fault\tCase\tβ bed\tφ scan\tS true\tφ elong\tPlunge\tS app\tHeave")
	for _, d := range res.Faults {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.Fault.ID, d.Case,
			cell(d.BeddingPitch), cell(d.ScanlinePitch),
			cell(d.TrueDisplacement), cell(d.ElongationPitch),
			cell(d.ElongationPlunge), cell(d.ApparentDisplacement),
			cell(d.Heave))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("AGGREGATE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Summed heave (dF):\t%.4f m\n", res.Heave)
	fmt.Fprintf(w, "  Excluded faults:\t%d of %d (undefined geometry)\n",
		res.Excluded, len(res.Faults))
	w.Flush()
	fmt.Println()
}

// cell formats a derived value for the fault table; undefined values show
// as a dash rather than NaN.
func cell(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.3f", v)
}
