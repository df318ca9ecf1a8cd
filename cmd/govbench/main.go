package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ja7ad/govbench/pkg/config"
	"github.com/ja7ad/govbench/pkg/consumption"
	"github.com/ja7ad/govbench/pkg/report"
	"github.com/ja7ad/govbench/pkg/results"
)

type opts struct {
	configPath string

	// outputs
	csvPath  string
	jsonPath string
	yamlPath string
	htmlPath string
	summary  bool

	// logging
	debug     bool
	logFormat string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o opts

	root := &cobra.Command{
		Use:   "govbench [ROOT]",
		Short: "CPU governor power/efficiency comparison",
		Long: `The govbench tool reads the power sampler and CPU burner reports of a
governor benchmark run and prints SOC and CA57 energy together with the
energy spent per burner cycle for every governor, CPU set and thread count.

ROOT is the directory holding the power-<gov>-<cpus>-c<threads>.txt and
burn-<gov>-<cpus>-c<threads>.txt reports (default ` + config.DefaultRoot + `).

Examples:
  govbench /srv/rcar-root/home/root/base-25u
  govbench --summary --csv out/report.csv --html out/report.html ./base-25u`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, o, args)
		},
	}

	root.Flags().StringVarP(&o.configPath, "config", "c", "", "read settings from a YAML file; flags take precedence")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write one row per cell to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write one row per cell to JSON file")
	root.Flags().StringVar(&o.yamlPath, "yaml", "", "write one row per cell to YAML file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "write cells and per-governor summary to HTML file")
	root.Flags().BoolVarP(&o.summary, "summary", "s", false, "print per-governor totals after the table")
	root.Flags().BoolVar(&o.debug, "debug", false, "log every report file read")
	root.Flags().StringVar(&o.logFormat, "log-format", "", "log format: text or json")

	return root
}

func run(ctx context.Context, cmd *cobra.Command, o opts, args []string) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return err
		}
	}

	flags := config.Config{
		CSV:       o.csvPath,
		JSON:      o.jsonPath,
		YAML:      o.yamlPath,
		HTML:      o.htmlPath,
		Summary:   o.summary,
		Debug:     o.debug,
		LogFormat: o.logFormat,
	}
	if len(args) > 0 {
		flags.Root = args[0]
	}
	cfg = config.Merge(cfg, &flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg))

	g, err := results.Load(ctx, cfg.Root)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Root, err)
	}

	out := cmd.OutOrStdout()
	if err := report.Print(out, g); err != nil {
		return err
	}

	var sums []consumption.GovernorSummary
	if cfg.Summary || cfg.HTML != "" {
		sums = consumption.Summarize(g)
	}
	if cfg.Summary {
		fmt.Fprintln(out)
		if err := report.PrintSummary(out, sums); err != nil {
			return err
		}
	}

	if !cfg.Exports() {
		return nil
	}
	rows := report.Rows(g)
	exports := []struct {
		path  string
		write func(io.Writer) error
	}{
		{cfg.CSV, func(w io.Writer) error { return report.WriteCSV(w, rows) }},
		{cfg.JSON, func(w io.Writer) error { return report.WriteJSON(w, rows) }},
		{cfg.YAML, func(w io.Writer) error { return report.WriteYAML(w, rows) }},
		{cfg.HTML, func(w io.Writer) error { return report.WriteHTML(w, cfg.Root, rows, sums) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := writeFile(e.path, e.write); err != nil {
			return fmt.Errorf("write %s: %w", e.path, err)
		}
		slog.Info("report written", "file", e.path)
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
