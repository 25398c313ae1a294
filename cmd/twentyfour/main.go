package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	_ "go.uber.org/automaxprocs"

	"svw.info/twentyfour/internal/solver"
)

var rootCmd = &cobra.Command{
	Use:   "twentyfour",
	Short: "Generate and solve instances of the 24 arithmetic puzzle",
	Long: `twentyfour enumerates every way of ordering four numbers, choosing
three operators, and parenthesizing the result, then reports the
equations that evaluate to 24.`,
}

func init() {
	rootCmd.AddCommand(playCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseLevel maps a level name onto slog levels. "trace" additionally
// reveals duplicate-skip and division-by-zero notices from the search.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return solver.LevelSkips
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// parseFour parses a comma-separated list of exactly four numbers.
func parseFour(s string) ([4]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return [4]int{}, fmt.Errorf("expected 4 comma-separated numbers, got %d", len(parts))
	}
	var out [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [4]int{}, fmt.Errorf("number %d: %w", i+1, err)
		}
		if n < 1 {
			return [4]int{}, fmt.Errorf("number %d must be positive, got %d", i+1, n)
		}
		out[i] = n
	}
	return out, nil
}
