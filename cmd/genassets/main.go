// Command genassets draws the placeholder tileset and character frames the
// game embeds from assets/.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

const (
	tileSize  = 16
	frameSize = 16
)

var palette = struct {
	Grass, GrassDot   color.RGBA
	Wall, WallEdge    color.RGBA
	Boards, BoardLine color.RGBA
	Mat, MatEdge      color.RGBA
	Outline, Eye      color.RGBA
}{
	Grass:     color.RGBA{86, 140, 70, 255},
	GrassDot:  color.RGBA{70, 118, 58, 255},
	Wall:      color.RGBA{130, 125, 115, 255},
	WallEdge:  color.RGBA{90, 86, 80, 255},
	Boards:    color.RGBA{150, 110, 70, 255},
	BoardLine: color.RGBA{120, 86, 52, 255},
	Mat:       color.RGBA{160, 50, 50, 255},
	MatEdge:   color.RGBA{110, 30, 30, 255},
	Outline:   color.RGBA{20, 20, 20, 255},
	Eye:       color.RGBA{255, 255, 255, 255},
}

// characters maps an asset set name to its body colour.
var characters = map[string]color.RGBA{
	"player": {0, 200, 90, 255},
	"npc":    {230, 180, 40, 255},
}

// clips lists each state label with its frame count.
var clips = []struct {
	Label  string
	Frames int
}{
	{"idle", 2},
	{"run", 4},
	{"attack", 3},
}

var facings = []struct {
	Name   string
	DX, DY int
}{
	{"down", 0, 1},
	{"right", 1, 0},
	{"up", 0, -1},
	{"left", -1, 0},
}

func main() {
	out := flag.String("out", "assets", "asset root to write into")
	flag.Parse()

	if err := generate(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
}

func generate(root string) error {
	if err := savePNG(tileset(), filepath.Join(root, "rooms", "tiles.png")); err != nil {
		return err
	}
	for name, body := range characters {
		for _, c := range clips {
			for _, f := range facings {
				dir := filepath.Join(root, "characters", name, c.Label+"_"+f.Name)
				for i := 0; i < c.Frames; i++ {
					img := characterFrame(body, c.Label, i, f.DX, f.DY)
					if err := savePNG(img, filepath.Join(dir, fmt.Sprintf("%d.png", i))); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// tileset draws grass, wall, boards and mat side by side.
func tileset() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tileSize*4, tileSize))
	tiles := []func(*image.RGBA, int){
		func(img *image.RGBA, ox int) {
			fill(img, ox, palette.Grass)
			for _, p := range []image.Point{{4, 4}, {11, 6}, {6, 11}, {12, 13}} {
				img.Set(ox+p.X, p.Y, palette.GrassDot)
			}
		},
		func(img *image.RGBA, ox int) {
			fill(img, ox, palette.Wall)
			border(img, ox, palette.WallEdge)
			for x := 0; x < tileSize; x++ {
				img.Set(ox+x, tileSize/2, palette.WallEdge)
			}
		},
		func(img *image.RGBA, ox int) {
			fill(img, ox, palette.Boards)
			for y := 3; y < tileSize; y += 4 {
				for x := 0; x < tileSize; x++ {
					img.Set(ox+x, y, palette.BoardLine)
				}
			}
		},
		func(img *image.RGBA, ox int) {
			fill(img, ox, palette.Mat)
			border(img, ox, palette.MatEdge)
		},
	}
	for i, paint := range tiles {
		paint(img, i*tileSize)
	}
	return img
}

func fill(img *image.RGBA, ox int, c color.RGBA) {
	draw.Draw(img, image.Rect(ox, 0, ox+tileSize, tileSize), &image.Uniform{c}, image.Point{}, draw.Src)
}

func border(img *image.RGBA, ox int, c color.RGBA) {
	for i := 0; i < tileSize; i++ {
		img.Set(ox+i, 0, c)
		img.Set(ox+i, tileSize-1, c)
		img.Set(ox, i, c)
		img.Set(ox+tileSize-1, i, c)
	}
}

// characterFrame draws a round body that bobs with the frame index, with an
// eye pushed toward the facing. Attack frames grow the outline.
func characterFrame(body color.RGBA, label string, frame, dx, dy int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameSize, frameSize))

	bob := 0
	switch label {
	case "idle":
		bob = frame % 2
	case "run":
		bob = []int{0, -1, 0, 1}[frame%4]
	}
	radius := 5
	if label == "attack" {
		radius += frame
		if radius > 7 {
			radius = 7
		}
	}

	cx, cy := frameSize/2, frameSize/2+bob
	for y := 0; y < frameSize; y++ {
		for x := 0; x < frameSize; x++ {
			d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			switch {
			case d <= radius*radius:
				img.Set(x, y, body)
			case d <= (radius+1)*(radius+1):
				img.Set(x, y, palette.Outline)
			}
		}
	}

	ex, ey := cx+dx*3, cy+dy*3
	img.Set(ex, ey, palette.Eye)
	img.Set(ex-dy, ey-dx, palette.Eye)
	return img
}

func savePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
