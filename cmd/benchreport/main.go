package main

import (
	"flag"
	"log/slog"
	"os"
)

func main() {
	in := flag.String("in", "benchmark_results_detailed.csv", "benchmark results CSV file")
	pngOut := flag.String("png", "benchmark_comparison.png", "output path for the comparison chart PNG")
	pdfOut := flag.String("pdf", "", "optional output path for the PDF report")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	app := NewApp(logger)
	if err := app.Run(*in, *pngOut, *pdfOut); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}
