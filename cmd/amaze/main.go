// Command amaze reads one textual maze, solves it, and writes the audit
// artifact. File handling and logging live here; the library packages
// stay pure.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/amaze"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	in := flag.String("in", "-", "maze file to solve ('-' reads stdin)")
	out := flag.String("out", getEnv("AMAZE_OUTPUT", "output.txt"), "audit artifact path")
	flag.Parse()

	raw, err := readInput(*in)
	if err != nil {
		log.Error().Err(err).Str("in", *in).Msg("failed to read maze")
		os.Exit(2)
	}

	report := amaze.Solve(string(raw))
	if err := os.WriteFile(*out, []byte(report.Artifact), 0o644); err != nil {
		log.Error().Err(err).Str("out", *out).Msg("failed to write artifact")
		os.Exit(2)
	}

	switch report.Status {
	case amaze.StatusSolved:
		log.Info().
			Stringer("status", report.Status).
			Float64("elapsed_ms", report.Millis()).
			Int("path_cells", len(report.Path)).
			Str("out", *out).
			Msg("maze solved")
	case amaze.StatusNoPath:
		log.Warn().
			Stringer("status", report.Status).
			Float64("elapsed_ms", report.Millis()).
			Str("out", *out).
			Msg("no path between start and end")
		os.Exit(1)
	case amaze.StatusInvalid:
		log.Error().
			Err(report.Err).
			Stringer("status", report.Status).
			Float64("elapsed_ms", report.Millis()).
			Str("out", *out).
			Msg("maze failed validation")
		os.Exit(2)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
