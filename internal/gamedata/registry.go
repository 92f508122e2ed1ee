package gamedata

import (
	"errors"
	"fmt"
	"slices"
)

// DifficultyRegistry holds difficulty presets ordered by ascending maze size.
type DifficultyRegistry struct {
	difficulties []DifficultyDef
	defaultID    string
}

// NewDifficultyRegistry creates a registry from loaded presets. defaultID must
// name one of them.
func NewDifficultyRegistry(defs []DifficultyDef, defaultID string) (*DifficultyRegistry, error) {
	if len(defs) == 0 {
		return nil, errors.New("no difficulties defined")
	}

	sorted := slices.Clone(defs)
	slices.SortStableFunc(sorted, func(a, b DifficultyDef) int {
		return a.Size - b.Size
	})

	registry := &DifficultyRegistry{difficulties: sorted, defaultID: defaultID}
	if registry.ByID(defaultID) == nil {
		return nil, fmt.Errorf("default difficulty %q not defined", defaultID)
	}
	return registry, nil
}

// LoadDifficultyRegistry loads and creates a registry from the embedded difficulties.json.
func LoadDifficultyRegistry() (*DifficultyRegistry, error) {
	file, err := LoadDifficulties()
	if err != nil {
		return nil, err
	}
	return NewDifficultyRegistry(file.Difficulties, file.Default)
}

// MustLoadDifficultyRegistry loads a registry, panicking on error.
func MustLoadDifficultyRegistry() *DifficultyRegistry {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// ByID returns the difficulty with the given ID, or nil if not found.
func (r *DifficultyRegistry) ByID(id string) *DifficultyDef {
	for i := range r.difficulties {
		if r.difficulties[i].ID == id {
			return &r.difficulties[i]
		}
	}
	return nil
}

// ByKey returns the difficulty bound to a menu hotkey, or nil.
func (r *DifficultyRegistry) ByKey(key rune) *DifficultyDef {
	for i := range r.difficulties {
		if r.difficulties[i].KeyRune() == key {
			return &r.difficulties[i]
		}
	}
	return nil
}

// Default returns the default difficulty.
func (r *DifficultyRegistry) Default() *DifficultyDef {
	return r.ByID(r.defaultID)
}

// All returns all difficulties, smallest maze first.
func (r *DifficultyRegistry) All() []DifficultyDef {
	return r.difficulties
}

// Count returns the number of difficulties in the registry.
func (r *DifficultyRegistry) Count() int {
	return len(r.difficulties)
}
