package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

var (
	boardOptions = game.NewBoardOptions()
	configPath   string
	reveals      []string
	useDirector  = false
	verbose      = false
	windowSize   = "800x600"
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play Minesweeper headlessly, from the command line",
	Long: `gosweep generates a Minesweeper board and plays reveals on it,
printing the board as the player would see it.

Reveal tiles by coordinates (0,0 is the bottom-left tile)
	gosweep --reveal 3,4 --reveal 0,0

Use the director flag to make the computer play for you
	gosweep --director
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		game.SetLogger(logger)

		options, err := loadOptions(cmd)
		if err != nil {
			return err
		}

		window, err := parseWindowSize(windowSize)
		if err != nil {
			return err
		}

		board, initial, err := game.CreateBoard(options, window)
		if err != nil {
			return err
		}
		if len(initial.Revealed) > 0 {
			logger.WithField("revealed", len(initial.Revealed)).Info("safe start")
		}

		for _, reveal := range reveals {
			coords, err := parseCoordinates(reveal)
			if err != nil {
				return err
			}

			outcome := board.ProcessRevealTrigger(coords)
			logger.WithFields(logrus.Fields{
				"coordinates": coords,
				"revealed":    len(outcome.Revealed),
				"hitBomb":     outcome.HitBomb,
			}).Info("revealed")
		}

		if useDirector {
			director := random.New(rand.New(rand.NewSource(options.Seed)))
			playDirector(director, board, logger)
		}

		fmt.Println(board.ConsoleOutput())
		fmt.Printf("%s, %d tiles left\n", board.State(), board.Remaining())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func playDirector(director game.Director, board *game.Board, logger *logrus.Logger) {
	director.Init(board)
	for {
		outcome, acted := director.Act()
		if !acted {
			return
		}
		logger.WithFields(logrus.Fields{
			"revealed": len(outcome.Revealed),
			"hitBomb":  outcome.HitBomb,
		}).Debug("director acted")
	}
}

func loadOptions(cmd *cobra.Command) (game.BoardOptions, error) {
	options := boardOptions
	if configPath != "" {
		loaded, err := game.LoadBoardOptions(configPath)
		if err != nil {
			return options, err
		}

		// Flags given explicitly win over the file
		flags := cmd.Flags()
		if flags.Changed("width") {
			loaded.MapSize.Width = options.MapSize.Width
		}
		if flags.Changed("height") {
			loaded.MapSize.Height = options.MapSize.Height
		}
		if flags.Changed("mines") {
			loaded.BombCount = options.BombCount
		}
		if flags.Changed("safe-start") {
			loaded.SafeStart = options.SafeStart
		}
		if flags.Changed("seed") {
			loaded.Seed = options.Seed
		}
		options = loaded
	}

	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	return options, nil
}

func parseCoordinates(value string) (game.Coordinates, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return game.Coordinates{}, fmt.Errorf("invalid coordinates %q, expected x,y", value)
	}

	x, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 16)
	if err != nil {
		return game.Coordinates{}, fmt.Errorf("invalid coordinates %q: %w", value, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 16)
	if err != nil {
		return game.Coordinates{}, fmt.Errorf("invalid coordinates %q: %w", value, err)
	}

	return game.Coordinates{X: uint16(x), Y: uint16(y)}, nil
}

func parseWindowSize(value string) (pixel.Vec, error) {
	parts := strings.Split(value, "x")
	if len(parts) != 2 {
		return pixel.ZV, fmt.Errorf("invalid window size %q, expected WIDTHxHEIGHT", value)
	}

	width, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return pixel.ZV, fmt.Errorf("invalid window size %q: %w", value, err)
	}
	height, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return pixel.ZV, fmt.Errorf("invalid window size %q: %w", value, err)
	}

	return pixel.V(width, height), nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().Uint16VarP(&boardOptions.MapSize.Width, "width", "w", boardOptions.MapSize.Width, "Width of game board, in cells")
	rootCmd.Flags().Uint16VarP(&boardOptions.MapSize.Height, "height", "h", boardOptions.MapSize.Height, "Height of game board, in cells")
	rootCmd.Flags().Uint16VarP(&boardOptions.BombCount, "mines", "m", boardOptions.BombCount, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&boardOptions.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&boardOptions.SafeStart, "safe-start", false, "Reveal an empty tile before the first move")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file to load board options from")
	rootCmd.Flags().StringVar(&windowSize, "window", windowSize, "Window size used to fit adaptive tile sizes, as WIDTHxHEIGHT")
	rootCmd.Flags().StringArrayVarP(&reveals, "reveal", "r", nil, "Reveal the tile at x,y (repeatable)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
}
