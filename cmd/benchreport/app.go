package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/user/matrixbench_go/internal/analysis"
	"github.com/user/matrixbench_go/internal/parser"
	"github.com/user/matrixbench_go/internal/report"
)

// App drives the report pipeline: parse the results file, group trials by
// method, render the comparison chart, and write the output artifacts.
type App struct {
	logger *slog.Logger
}

func NewApp(logger *slog.Logger) *App {
	return &App{logger: logger}
}

// Run executes the pipeline once. A parse-level failure (unreadable or
// headerless file) aborts before any artifact is written; skipped rows only
// produce warnings.
func (a *App) Run(csvPath, pngPath, pdfPath string) error {
	a.logger.Info("Parsing benchmark results", "file", csvPath)
	parsedData, err := parser.ParseBenchmarkData(csvPath)
	if err != nil {
		return fmt.Errorf("error parsing CSV: %w", err)
	}
	for _, warn := range parsedData.ParseErrors {
		a.logger.Warn(warn)
	}
	a.logger.Info("Parsed benchmark trials",
		"valid", len(parsedData.Records), "skipped", len(parsedData.ParseErrors))

	dataset := analysis.AggregateByMethod(parsedData.Records)
	a.logger.Info("Grouped trials by method", "methods", len(dataset.Methods))

	chartPNG, err := report.CreateComparisonChart(dataset)
	if err != nil {
		return fmt.Errorf("error rendering comparison chart: %w", err)
	}
	if err := os.WriteFile(pngPath, chartPNG, 0644); err != nil {
		return fmt.Errorf("error writing chart: %w", err)
	}
	a.logger.Info("Wrote comparison chart", "file", pngPath)

	if pdfPath == "" {
		return nil
	}
	summaries := analysis.SummarizeMethods(dataset)
	if err := report.BuildPDFReport(pdfPath, summaries, len(parsedData.Records), parsedData.ParseErrors, chartPNG); err != nil {
		return fmt.Errorf("error generating PDF report: %w", err)
	}
	a.logger.Info("Wrote PDF report", "file", pdfPath)
	return nil
}
