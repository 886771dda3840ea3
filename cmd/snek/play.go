package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snek/internal/config"
	"github.com/vovakirdan/snek/internal/platform/tui"
	"github.com/vovakirdan/snek/internal/storage"
)

// playFlags holds the game flags. They only take effect when set explicitly,
// otherwise the config file wins.
var playFlags struct {
	width         int
	height        int
	fullscreen    bool
	walls         bool
	snakeLength   int
	food          uint32
	speed         uint32
	foodToSpeedUp uint32
	seed          uint64
	hideScore     bool
	snakeTheme    string
	boardTheme    string
	foodTheme     string
	difficulty    string
	showKeys      bool
}

func addPlayFlags(cmd *cobra.Command) {
	def := config.Default()
	f := cmd.Flags()

	f.IntVar(&playFlags.width, "width", def.Width, "Board width in cells")
	f.IntVar(&playFlags.height, "height", def.Height, "Board height in cells")
	f.BoolVar(&playFlags.fullscreen, "fullscreen", false, "Size the board to fill the terminal")
	f.BoolVarP(&playFlags.walls, "walls", "w", false, "Solid walls instead of wrapping edges")
	f.IntVarP(&playFlags.snakeLength, "snake-length", "l", def.SnakeLength, "Initial snake length")
	f.Uint32VarP(&playFlags.food, "food", "f", def.Food, "Number of food items on the board")
	f.Uint32VarP(&playFlags.speed, "speed", "s", def.Speed, "Initial speed in steps per second")
	f.Uint32VarP(&playFlags.foodToSpeedUp, "food-to-speed-up", "a", def.FoodToSpeedUp, "Food eaten per speed increase (0 = never)")
	f.Uint64Var(&playFlags.seed, "seed", 0, "RNG seed (0 = random)")
	f.BoolVar(&playFlags.hideScore, "hide-score", false, "Do not show the score")
	f.StringVar(&playFlags.snakeTheme, "snake-theme", def.Theme.Snake, "Snake theme")
	f.StringVar(&playFlags.boardTheme, "board-theme", def.Theme.Board, "Board theme")
	f.StringVar(&playFlags.foodTheme, "food-theme", def.Theme.Food, "Food theme")
	f.StringVar(&playFlags.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.BoolVar(&playFlags.showKeys, "show-keys", false, "Show key help under the board")
}

// loadSettings loads the config file and applies the global flags.
func loadSettings() (config.Settings, error) {
	s, err := config.Load(flagConfig)
	if err != nil {
		return s, err
	}
	if flagDBPath != "" {
		s.DB = flagDBPath
	}
	return s, nil
}

// applyPlayFlags overrides settings with the game flags the user set.
// A difficulty flag is applied first so explicit speed flags still win.
func applyPlayFlags(cmd *cobra.Command, s *config.Settings) error {
	f := cmd.Flags()

	if f.Changed("difficulty") {
		preset, err := config.ParsePreset(playFlags.difficulty)
		if err != nil {
			return err
		}
		s.Difficulty = preset
		config.ApplyPreset(s, preset)
	}

	if f.Changed("width") {
		s.Width = playFlags.width
	}
	if f.Changed("height") {
		s.Height = playFlags.height
	}
	if f.Changed("fullscreen") {
		s.Fullscreen = playFlags.fullscreen
	}
	if f.Changed("walls") {
		s.Walls = playFlags.walls
	}
	if f.Changed("snake-length") {
		s.SnakeLength = playFlags.snakeLength
	}
	if f.Changed("food") {
		s.Food = playFlags.food
	}
	if f.Changed("speed") {
		s.Speed = playFlags.speed
	}
	if f.Changed("food-to-speed-up") {
		s.FoodToSpeedUp = playFlags.foodToSpeedUp
	}
	if f.Changed("seed") {
		s.Seed = playFlags.seed
	}
	if f.Changed("hide-score") {
		s.HideScore = playFlags.hideScore
	}
	if f.Changed("snake-theme") {
		s.Theme.Snake = playFlags.snakeTheme
	}
	if f.Changed("board-theme") {
		s.Theme.Board = playFlags.boardTheme
	}
	if f.Changed("food-theme") {
		s.Theme.Food = playFlags.foodTheme
	}

	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := applyPlayFlags(cmd, &settings); err != nil {
		return err
	}

	if settings.Fullscreen {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return errors.New("fullscreen needs a terminal to measure")
		}
		settings.FitTerminal(cols, rows)
	}

	// Validate everything before touching the terminal
	cfg, err := settings.GameConfig()
	if err != nil {
		return err
	}
	th, err := settings.ResolveTheme()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer closeLog()

	opts := tui.Options{
		Theme:    th,
		Logger:   logger,
		ShowHelp: playFlags.showKeys,
	}

	// Open score storage
	store, err := storage.Open(settings.DB)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", settings.DB, "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Info("starting game",
		"variant", cfg.Variant(),
		"seed", cfg.Seed,
		"theme", fmt.Sprintf("%s/%s/%s", settings.Theme.Snake, settings.Theme.Board, settings.Theme.Food),
	)

	outcome, err := tui.Run(cfg, opts)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if line := tui.ResultLine(outcome); line != "" {
		fmt.Println(line)
	}
	if outcome.Saved != nil {
		logger.Info("result saved", "run", outcome.Saved.RunID, "score", outcome.Saved.Score)
	}

	return nil
}
