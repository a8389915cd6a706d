package gamedata

import "errors"

// LevelRegistry holds the authored levels in play order.
type LevelRegistry struct {
	levels []LevelDef
}

// NewLevelRegistry creates a registry from loaded level definitions.
func NewLevelRegistry(levels []LevelDef) *LevelRegistry {
	return &LevelRegistry{levels: levels}
}

// LoadLevelRegistry loads and creates a registry from the embedded levels.yaml.
func LoadLevelRegistry() (*LevelRegistry, error) {
	levels, err := LoadLevels()
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, errors.New("no levels loaded from levels.yaml")
	}
	return NewLevelRegistry(levels), nil
}

// GetByIndex returns the level at the zero-based index, or nil past the last level.
func (r *LevelRegistry) GetByIndex(index int) *LevelDef {
	if index < 0 || index >= len(r.levels) {
		return nil
	}
	return &r.levels[index]
}

// GetByName returns the level with the given name, or nil if not found.
func (r *LevelRegistry) GetByName(name string) *LevelDef {
	for i := range r.levels {
		if r.levels[i].Name == name {
			return &r.levels[i]
		}
	}
	return nil
}

// All returns all level definitions.
func (r *LevelRegistry) All() []LevelDef {
	return r.levels
}

// Count returns the number of authored levels.
func (r *LevelRegistry) Count() int {
	return len(r.levels)
}
