package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/generator"
	"svw.info/twentyfour/internal/solver"
)

var (
	playNumbers string
	playWidth   int
	playSeed    int64
	playGames   int
	playLevel   string

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Solve one puzzle and print a small batch of solvable games",
		Long: `Solves the given numbers (or a classic example), then a random
puzzle, then generates solvable games until the requested batch is full,
printing every solution found along the way.`,
		RunE: runPlay,
	}
)

func init() {
	playCmd.Flags().StringVarP(&playNumbers, "numbers", "n", "2,4,5,7", "four comma-separated numbers for the first game")
	playCmd.Flags().IntVarP(&playWidth, "width", "w", 1, "digit width: 1 draws from 1-9, 2 from 1-24")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = time-based)")
	playCmd.Flags().IntVarP(&playGames, "games", "g", 3, "solvable games to generate")
	playCmd.Flags().StringVar(&playLevel, "log-level", "info", "trace|debug|info|warn|error")
}

func runPlay(cmd *cobra.Command, args []string) error {
	lvl := parseLevel(playLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	width := domain.WidthSingle
	if playWidth == 2 {
		width = domain.WidthDouble
	}
	seed := playSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := solver.NewSearcher()
	if lvl <= slog.LevelDebug {
		s.Logger = logger
	}
	gen := generator.NewRandom(s, width, seed)
	ctx := cmd.Context()

	// Game 1: the requested (or classic) numbers.
	n4, err := parseFour(playNumbers)
	if err != nil {
		return err
	}
	p, _, err := gen.Build(ctx, &n4)
	if err != nil {
		return err
	}
	printPuzzle("", p)

	// Game 2: a random draw; an empty solution list is fair game here.
	p, _, err = gen.Build(ctx, nil)
	if err != nil {
		return err
	}
	printPuzzle("", p)

	// A batch of games guaranteed to be solvable.
	games, _, err := gen.GenerateSolvable(ctx, playGames)
	if err != nil {
		return err
	}
	for i, g := range games {
		printPuzzle(fmt.Sprintf("Game-%d ", i+1), g)
	}
	return nil
}

func printPuzzle(prefix string, p *domain.Puzzle) {
	fmt.Printf("%sNUMBERS: %v\n", prefix, p.Numbers)
	fmt.Printf("%sSOLUTIONS: %d\n", prefix, len(p.Solutions))
	for i, s := range p.Solutions {
		fmt.Printf("%d: %s\n", i+1, s)
	}
	fmt.Println()
}
