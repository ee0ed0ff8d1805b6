package song

import (
	"embed"
	"fmt"
	"path"
	"sort"
)

//go:embed songs/*.yaml
var builtinFS embed.FS

// Catalog returns the built-in songs sorted by ID.
func Catalog() []Song {
	entries, err := builtinFS.ReadDir("songs")
	if err != nil {
		return nil
	}
	songs := make([]Song, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("songs", e.Name()))
		if err != nil {
			continue
		}
		s, err := Parse(data)
		if err != nil {
			continue
		}
		songs = append(songs, s)
	}
	sort.Slice(songs, func(i, j int) bool {
		return songs[i].ID < songs[j].ID
	})
	return songs
}

// Builtin returns a built-in song by ID.
func Builtin(id string) (Song, error) {
	for _, s := range Catalog() {
		if s.ID == id {
			return s, nil
		}
	}
	return Song{}, fmt.Errorf("%w: %q", ErrUnknownSong, id)
}

// DefaultID is the song played when none is selected.
const DefaultID = "ode_to_joy"
