package gamedata

// DifficultyDef is a selectable maze size loaded from JSON.
type DifficultyDef struct {
	ID   string `json:"id"`   // Unique identifier (e.g., "medium")
	Name string `json:"name"` // Display name (e.g., "Medium")
	Key  string `json:"key"`  // Menu hotkey (e.g., "2")
	Size int    `json:"size"` // Cells per side
}

// KeyRune returns the menu hotkey as a rune.
func (d *DifficultyDef) KeyRune() rune {
	if len(d.Key) == 0 {
		return 0
	}
	return rune(d.Key[0])
}

// DifficultiesFile represents the structure of difficulties.json.
type DifficultiesFile struct {
	Default      string          `json:"default"`
	Difficulties []DifficultyDef `json:"difficulties"`
}

// LoadDifficulties loads difficulty presets from the embedded difficulties.json file.
func LoadDifficulties() (DifficultiesFile, error) {
	return Load[DifficultiesFile]("difficulties.json")
}
