// Package main fits a straight line to a measured sample and reports the
// parameters and goodness of fit the way a lab write-up needs them.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/gofit/dataset"
	"github.com/sartorproj/gofit/fit"
	"github.com/sartorproj/gofit/style"
)

// options collects the command line flags.
type options struct {
	xColumn       string
	yColumn       string
	errColumn     string
	sheet         string
	table         string
	style         string
	absoluteSigma bool
}

func main() {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "demo [data.csv|data.xlsx]",
		Short: "Fit a straight line and report chi-squared goodness of fit",
		Long: `Fit y = a + b*x to a sample by weighted least squares, print the
parameters rounded to their uncertainties, the chi-squared statistics and a
LaTeX table of the parameters.

Without a data file a built-in Ohm's law measurement is used.

Example: demo run1.csv --err sigma --table fit.tex --style ieee`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(os.Getenv("LOG_LEVEL"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, path, opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.xColumn, "x", "x", "x column name")
	cmd.Flags().StringVar(&opts.yColumn, "y", "y", "y column name")
	cmd.Flags().StringVar(&opts.errColumn, "err", "", "y uncertainty column name")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet for .xlsx files (default: first sheet)")
	cmd.Flags().StringVar(&opts.table, "table", "", "write the LaTeX parameter table to this file")
	cmd.Flags().StringVar(&opts.style, "style", "latex", "plot style preset: default, latex, ieee or a YAML file")
	cmd.Flags().BoolVar(&opts.absoluteSigma, "absolute-sigma", false, "treat uncertainties as exact instead of scaling by the reduced chi-squared")

	return cmd
}

// newLogger builds a development logger at the given level (default info).
func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		cfg.Level = lvl
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// ljungBoxLags is the residual autocorrelation lag tested after a fit.
const ljungBoxLags = 4

func run(cmd *cobra.Command, path string, opts options, logger *zap.Logger) error {
	out := cmd.OutOrStdout()

	// The preset is the figure configuration a plotting backend would
	// consume; it is resolved and logged here, nothing is rendered.
	preset, err := loadStyle(opts.style)
	if err != nil {
		return err
	}
	logger.Info("style preset",
		zap.String("name", preset.Name()),
		zap.Bool("usetex", preset.UsesTeX()),
		zap.Strings("params", preset.Keys()),
	)

	sample, err := loadSample(path, opts)
	if err != nil {
		return err
	}
	logger.Info("sample loaded",
		zap.String("name", sample.Name),
		zap.Int("n", sample.Len()),
		zap.Bool("uncertainties", sample.HasErrors()),
	)

	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintf(out, "Linear fit: %s (%d points)\n", sample.Name, sample.Len())
	fmt.Fprintln(out, strings.Repeat("=", 60))

	params, err := fit.FitLinear(sample, opts.absoluteSigma)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nFitted parameters (y = a + b*x):")
	if err := params.Print(out); err != nil {
		return err
	}

	cfg := fit.DefaultConfig()
	cfg.Report = out
	cfg.Logger = logger
	result, err := fit.ChiSquaredSample(sample, fit.Linear, params.Values, cfg)
	if err != nil {
		return err
	}

	if d, err := result.DurbinWatson(); err == nil {
		fmt.Fprintf(out, "Durbin-Watson statistic: %.4f\n", d)
	} else {
		logger.Warn("durbin-watson skipped", zap.Error(err))
	}
	if lb, err := result.LjungBox(ljungBoxLags); err == nil {
		fmt.Fprintf(out, "Ljung-Box Q(%d): %.4f (p-value %.4f)\n", lb.Lags, lb.Statistic, lb.PValue)
	} else {
		logger.Warn("ljung-box skipped", zap.Error(err))
	}

	if opts.table != "" {
		if err := params.SaveLatexTable(opts.table); err != nil {
			return err
		}
		logger.Info("latex table written", zap.String("path", opts.table))
		return nil
	}

	fmt.Fprintln(out, "\nLaTeX table:")
	if err := params.WriteLatexTable(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

func loadStyle(name string) (style.Preset, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return style.Load(name)
	}
	return style.Named(name)
}

func loadSample(path string, opts options) (*dataset.Sample, error) {
	if path == "" {
		return ohmsLaw(), nil
	}

	csvOpts := dataset.DefaultCSVOptions()
	csvOpts.XColumn = opts.xColumn
	csvOpts.YColumn = opts.yColumn
	csvOpts.ErrColumn = opts.errColumn
	csvOpts.Sheet = opts.sheet

	var (
		sample *dataset.Sample
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		sample, err = dataset.LoadXLSX(path, csvOpts)
	default:
		sample, err = dataset.LoadCSV(path, csvOpts)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	sample.Name = filepath.Base(path)
	return sample, nil
}

// ohmsLaw is a current-voltage measurement across a nominal 47 ohm
// resistor, voltage in V against current in mA.
func ohmsLaw() *dataset.Sample {
	current := []float64{5, 10, 15, 20, 25, 30, 35, 40}
	voltage := []float64{0.241, 0.468, 0.712, 0.935, 1.182, 1.406, 1.652, 1.874}
	sigma := []float64{0.01, 0.01, 0.01, 0.01, 0.02, 0.02, 0.02, 0.02}

	s, _ := dataset.NewWithErrors(current, voltage, sigma)
	s.Name = "ohms-law"
	return s
}
