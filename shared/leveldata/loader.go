package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX file.
const (
	GroupSolids  = "Solids"
	GroupRamps   = "Ramps"
	GroupLadders = "Ladders"
	GroupSpawns  = "PlayerSpawn"
)

var ErrNoSpawn = errors.New("level has no player spawn")

// LoadLevel parses a TMX file into world units. One tile is one world unit.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	sx := 1 / float64(levelMap.TileWidth)
	sz := 1 / float64(levelMap.TileHeight)

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupSolids:
				box, err := parseBox(o, sx, sz)
				if err != nil {
					return nil, fmt.Errorf("%s: solid %d: %w", tmxPath, o.ID, err)
				}
				level.Solids = append(level.Solids, box)

			case GroupRamps:
				box, err := parseBox(o, sx, sz)
				if err != nil {
					return nil, fmt.Errorf("%s: ramp %d: %w", tmxPath, o.ID, err)
				}
				rise := strings.ToLower(o.Properties.GetString("rise"))
				switch rise {
				case "east", "west", "south", "north":
				default:
					return nil, fmt.Errorf("%s: ramp %d: unknown rise %q", tmxPath, o.ID, rise)
				}
				level.Ramps = append(level.Ramps, Ramp{Box: box, Rise: rise})

			case GroupLadders:
				box, err := parseBox(o, sx, sz)
				if err != nil {
					return nil, fmt.Errorf("%s: ladder %d: %w", tmxPath, o.ID, err)
				}
				level.Ladders = append(level.Ladders, Ladder{
					X:     (box.MinX + box.MaxX) / 2,
					Z:     (box.MinZ + box.MaxZ) / 2,
					HalfX: (box.MaxX - box.MinX) / 2,
					HalfZ: (box.MaxZ - box.MinZ) / 2,
					MinY:  box.MinY,
					MaxY:  box.MaxY,
				})

			case GroupSpawns:
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X * sx,
					Y:     o.Properties.GetFloat("y"),
					Z:     o.Y * sz,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	return level, nil
}

func parseBox(o *tiled.Object, sx, sz float64) (Box, error) {
	minY := o.Properties.GetFloat("minY")
	maxY := o.Properties.GetFloat("maxY")
	if maxY <= minY {
		return Box{}, fmt.Errorf("maxY %v must be above minY %v", maxY, minY)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Box{}, fmt.Errorf("empty footprint %vx%v", o.Width, o.Height)
	}
	return Box{
		MinX: o.X * sx,
		MinY: minY,
		MinZ: o.Y * sz,
		MaxX: (o.X + o.Width) * sx,
		MaxY: maxY,
		MaxZ: (o.Y + o.Height) * sz,
	}, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
