package game

const (
	// MaxSize is the largest maze the front ends will generate.
	MaxSize = 40
	// LevelStep is how much each completed level grows the maze.
	LevelStep = 5
)

// NextSize returns the maze size for the level after one of the given size.
func NextSize(size int) int {
	return min(size+LevelStep, MaxSize)
}
