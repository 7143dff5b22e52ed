// Package animation tracks playback position through frame clips without
// touching the frames themselves.
package animation

import "fmt"

// Progress is the playhead for one entity. Index is fractional so clips run
// at a frame rate independent of the tick rate.
type Progress struct {
	Clip  string
	Index float64
	// Finished is set once a clip played without looping reaches its last frame.
	Finished bool
}

// Restart rewinds to the first frame. The clip name is kept.
func (p *Progress) Restart() {
	p.Index = 0
	p.Finished = false
}

// Advance plays clip forward by step frames. count is the number of frames in
// clip. Once the playhead runs past the end a looping clip returns to its
// first frame and a non-looping clip holds its last one.
func (p *Progress) Advance(clip string, step float64, count int, loop bool) {
	if count <= 0 {
		panic(fmt.Sprintf("animation: clip %q has no frames", clip))
	}
	p.Clip = clip
	p.Index += step
	if p.Index < float64(count) {
		return
	}
	if loop {
		p.Index = 0
		return
	}
	p.Index = float64(count - 1)
	p.Finished = true
}

// Frame returns the integer frame to draw.
func (p Progress) Frame() int {
	return int(p.Index)
}
