package game

import (
	"fmt"

	"github.com/samdwyer/mazewalk/internal/config"
	"github.com/samdwyer/mazewalk/internal/gamedata"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation of the first maze. Used for
	// reproducible mazes. A seed of 0 means a random seed will be generated.
	Seed int64

	// Size of the first maze when the menu is skipped. 0 means use the
	// difficulty preset.
	Size int

	// Difficulty preset ID selected on the menu at startup.
	Difficulty string

	// SkipMenu starts straight into the first maze.
	SkipMenu bool
}

// LoadConfig reads MAZEWALK_SEED, MAZEWALK_SIZE, MAZEWALK_DIFFICULTY and
// MAZEWALK_SKIP_MENU, validating them against the difficulty presets.
func LoadConfig(difficulties *gamedata.DifficultyRegistry) (Config, error) {
	seed, err := config.Int64("MAZEWALK_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	size, err := config.Int("MAZEWALK_SIZE", 0)
	if err != nil {
		return Config{}, err
	}
	if size < 0 || size > MaxSize {
		return Config{}, fmt.Errorf("MAZEWALK_SIZE must be between 1 and %d, got %d", MaxSize, size)
	}

	difficulty := config.String("MAZEWALK_DIFFICULTY", difficulties.Default().ID)
	if difficulties.ByID(difficulty) == nil {
		return Config{}, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	return Config{
		Seed:       seed,
		Size:       size,
		Difficulty: difficulty,
		SkipMenu:   config.String("MAZEWALK_SKIP_MENU", "") != "",
	}, nil
}

// StartSize returns the size of the first maze.
func (c Config) StartSize(difficulties *gamedata.DifficultyRegistry) int {
	if c.Size > 0 {
		return c.Size
	}
	if d := difficulties.ByID(c.Difficulty); d != nil {
		return d.Size
	}
	return difficulties.Default().Size
}
