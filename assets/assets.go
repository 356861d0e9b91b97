package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/climber/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelLoader caches the embedded levels after the first load.
type LevelLoader struct {
	levels map[string]*leveldata.Level
	names  []string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels parses every embedded level and returns their sorted names.
func (l *LevelLoader) MustLoadLevels() []string {
	if l.levels == nil {
		levels, names, err := leveldata.LoadAllLevels(assetFS, levelsDir)
		if err != nil {
			panic(fmt.Sprintf("Failed to load levels: %v", err))
		}
		l.levels, l.names = levels, names
	}
	return l.names
}

// Level returns the named level, or an error listing what is available.
func (l *LevelLoader) Level(name string) (*leveldata.Level, error) {
	names := l.MustLoadLevels()
	level, ok := l.levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", name, names)
	}
	return level, nil
}
