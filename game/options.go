package game

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type AdaptiveTileSize struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TileSize is either a fixed world size, or a range the tile size is fitted
// into depending on the window size. Exactly one of the fields is set.
type TileSize struct {
	Fixed    *float64          `yaml:"fixed,omitempty"`
	Adaptive *AdaptiveTileSize `yaml:"adaptive,omitempty"`
}

func FixedTileSize(size float64) TileSize {
	return TileSize{Fixed: &size}
}

func AdaptiveTileSizeRange(min, max float64) TileSize {
	return TileSize{Adaptive: &AdaptiveTileSize{Min: min, Max: max}}
}

// Resolve computes the tile size for a grid of the given dimensions shown in
// a window of the given size.
func (tileSize TileSize) Resolve(window pixel.Vec, width, height uint16) float64 {
	if tileSize.Fixed != nil {
		return *tileSize.Fixed
	}

	maxWidth := window.X / float64(width)
	maxHeight := window.Y / float64(height)
	return math.Max(tileSize.Adaptive.Min, math.Min(math.Min(maxWidth, maxHeight), tileSize.Adaptive.Max))
}

type CenteredPosition struct {
	Offset pixel.Vec `yaml:"offset"`
}

// BoardPosition anchors the board in world space: centred on the origin,
// shifted by an offset, or with its bottom-left corner at a custom point.
type BoardPosition struct {
	Centered *CenteredPosition `yaml:"centered,omitempty"`
	Custom   *pixel.Vec        `yaml:"custom,omitempty"`
}

func CenteredBoard(offset pixel.Vec) BoardPosition {
	return BoardPosition{Centered: &CenteredPosition{Offset: offset}}
}

func CustomBoard(position pixel.Vec) BoardPosition {
	return BoardPosition{Custom: &position}
}

// Resolve returns the bottom-left corner of a board of the given size
func (position BoardPosition) Resolve(boardSize pixel.Vec) pixel.Vec {
	if position.Custom != nil {
		return *position.Custom
	}

	var offset pixel.Vec
	if position.Centered != nil {
		offset = position.Centered.Offset
	}
	return boardSize.Scaled(-0.5).Add(offset)
}

type MapSize struct {
	Width  uint16 `yaml:"width"`
	Height uint16 `yaml:"height"`
}

type BoardOptions struct {
	MapSize   MapSize `yaml:"map_size,flow"`
	BombCount uint16  `yaml:"bomb_count"`

	Position    BoardPosition `yaml:"position"`
	TileSize    TileSize      `yaml:"tile_size"`
	TilePadding float64       `yaml:"tile_padding"`

	// Whether to reveal an empty tile before the first move
	SafeStart bool `yaml:"safe_start"`

	// Seed for bomb placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
}

func NewBoardOptions() BoardOptions {
	return BoardOptions{
		MapSize:     MapSize{Width: 15, Height: 15},
		BombCount:   30,
		Position:    CenteredBoard(pixel.ZV),
		TileSize:    AdaptiveTileSizeRange(10, 50),
		TilePadding: 0,
		SafeStart:   false,
	}
}

// LoadBoardOptions reads options from a YAML file. Keys missing from the file
// keep their default values.
func LoadBoardOptions(path string) (BoardOptions, error) {
	defaults := NewBoardOptions()

	in, err := os.ReadFile(path)
	if err != nil {
		return defaults, err
	}

	// Variants are cleared first, so that a file naming one does not end up
	// merged with the default one
	options := defaults
	options.TileSize = TileSize{}
	options.Position = BoardPosition{}
	if err := yaml.Unmarshal(in, &options); err != nil {
		return defaults, fmt.Errorf("parsing %s: %w", path, err)
	}

	if options.TileSize == (TileSize{}) {
		options.TileSize = defaults.TileSize
	}
	if options.Position == (BoardPosition{}) {
		options.Position = defaults.Position
	}

	return options, options.Validate()
}

func (options BoardOptions) Serialize() string {
	out, err := yaml.Marshal(options)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func (options BoardOptions) Width() uint16 {
	return options.MapSize.Width
}

func (options BoardOptions) Height() uint16 {
	return options.MapSize.Height
}

func (options BoardOptions) Validate() error {
	width, height := options.Width(), options.Height()
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: map size %dx%d is empty", ErrInvalidConfiguration, width, height)
	}
	if uint(options.BombCount) >= uint(width)*uint(height) {
		return fmt.Errorf("%w: %d bombs do not fit a %dx%d grid",
			ErrInvalidConfiguration, options.BombCount, width, height)
	}

	tileSize := options.TileSize
	switch {
	case tileSize.Fixed != nil && tileSize.Adaptive != nil:
		return fmt.Errorf("%w: tile size is both fixed and adaptive", ErrInvalidConfiguration)
	case tileSize.Fixed != nil:
		if *tileSize.Fixed <= 0 {
			return fmt.Errorf("%w: fixed tile size %v", ErrInvalidConfiguration, *tileSize.Fixed)
		}
	case tileSize.Adaptive != nil:
		if tileSize.Adaptive.Min <= 0 || tileSize.Adaptive.Min > tileSize.Adaptive.Max {
			return fmt.Errorf("%w: adaptive tile size range [%v, %v]",
				ErrInvalidConfiguration, tileSize.Adaptive.Min, tileSize.Adaptive.Max)
		}
	default:
		return fmt.Errorf("%w: no tile size", ErrInvalidConfiguration)
	}

	if options.TilePadding < 0 {
		return fmt.Errorf("%w: negative tile padding %v", ErrInvalidConfiguration, options.TilePadding)
	}

	return nil
}

func (options BoardOptions) newRand() *rand.Rand {
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// CreateBoard builds a board for a window of the given size. When safe start
// is enabled, the outcome of the initial reveal is returned.
func CreateBoard(options BoardOptions, window pixel.Vec) (*Board, RevealOutcome, error) {
	if err := options.Validate(); err != nil {
		return nil, RevealOutcome{}, err
	}

	grid := EmptyGrid(options.Width(), options.Height())
	if err := grid.SetBombs(options.newRand(), options.BombCount); err != nil {
		return nil, RevealOutcome{}, err
	}
	log.Debugf("\n%s", grid.ConsoleOutput())

	tileSize := options.TileSize.Resolve(window, grid.width, grid.height)
	boardSize := pixel.V(float64(grid.width)*tileSize, float64(grid.height)*tileSize)
	position := options.Position.Resolve(boardSize)

	log.WithFields(logrus.Fields{
		"tileSize":  tileSize,
		"boardSize": boardSize,
		"position":  position,
	}).Info("creating board")

	board := NewBoard(grid, Bounds2{Position: position, Size: boardSize}, tileSize)
	board.tilePadding = options.TilePadding

	var outcome RevealOutcome
	if options.SafeStart {
		outcome, _ = board.SafeStart()
	}

	return board, outcome, nil
}
