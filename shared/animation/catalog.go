package animation

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Clips lists the clip directories under dir, sorted by name.
func Clips(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read clips in %s: %w", dir, err)
	}
	var clips []string
	for _, e := range entries {
		if e.IsDir() {
			clips = append(clips, e.Name())
		}
	}
	return clips, nil
}

// FramePaths lists the PNG frames of the clip directory dir in playback
// order. Frames are named by index ("0.png", "1.png", ...) and sorted
// numerically, so "10.png" follows "9.png".
func FramePaths(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read frames in %s: %w", dir, err)
	}

	type frame struct {
		index int
		name  string
	}
	var frames []frame
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".png" {
			continue
		}
		i, err := strconv.Atoi(strings.TrimSuffix(name, ".png"))
		if err != nil {
			return nil, fmt.Errorf("frame %s/%s: name is not an index", dir, name)
		}
		frames = append(frames, frame{index: i, name: name})
	}

	sort.Slice(frames, func(a, b int) bool {
		return frames[a].index < frames[b].index
	})
	paths := make([]string, len(frames))
	for i, f := range frames {
		paths[i] = path.Join(dir, f.name)
	}
	return paths, nil
}
