package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Show recorded high scores, grouped by board variant.

A variant describes the rules a game was played under, for example
"wrap-25x15" or "walls-40x20". Without an argument the scoreboard opens on
the first variant; use tab and the arrow keys to switch between them.

When stdout is not a terminal, or with --plain, the scores are printed as a
table instead.

Examples:
  snek scores
  snek scores wrap-25x15 --plain
  snek scores wrap-25x15 --clear
  snek scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete scores for the variant, or all scores without one")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
}

func runScores(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	var variant string
	if len(args) > 0 {
		variant = args[0]
	}

	// Open score storage
	store, err := storage.Open(settings.DB)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if variant == "" {
			if err := store.ClearAll(); err != nil {
				return err
			}
			fmt.Println("All scores cleared.")
			return nil
		}
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		fmt.Printf("Scores for %s cleared.\n", variant)
		return nil
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printScores(store, variant)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, variant, width, height)
}

// printScores writes the top scores of one variant, or of every variant, as
// plain tables.
func printScores(store *storage.Store, variant string) error {
	variants := []string{variant}
	if variant == "" {
		var err error
		variants, err = store.Variants()
		if err != nil {
			return err
		}
	}

	if len(variants) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snek' to set the first high score!")
		return nil
	}

	for i, v := range variants {
		if i > 0 {
			fmt.Println()
		}

		scores, err := store.TopScores(v, flagLimit)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}

		fmt.Printf("High Scores - %s\n", v)
		if len(scores) == 0 {
			fmt.Println("No scores recorded yet.")
			continue
		}
		fmt.Println(scoresTable(scores))

		if stats, err := store.GetStats(v); err == nil {
			fmt.Printf("Best: %d  Games: %d  Wins: %d  Avg: %.1f\n",
				stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
		}
	}

	return nil
}

func scoresTable(scores []storage.Result) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Length", "Result", "Date").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, s := range scores {
		t.Row(
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Length),
			string(s.Outcome),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	return t.String()
}
