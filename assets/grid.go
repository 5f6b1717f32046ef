package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"raycast/model"
)

// Map image colours and the tiles they stand for.
var tileColors = map[color.RGBA]int{
	{255, 255, 255, 255}: 0,
	{0, 0, 0, 255}:       1,
	{255, 0, 0, 255}:     2,
	{0, 255, 0, 255}:     3,
	{0, 0, 255, 255}:     4,
	{255, 255, 0, 255}:   5,
}

// LoadGrid decodes a map image with one pixel per cell.
func LoadGrid(fsys fs.FS, name string) (*model.Grid, error) {
	img, err := decodeImage(fsys, name)
	if err != nil {
		return nil, err
	}
	g, err := GridFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

func GridFromImage(img image.Image) (*model.Grid, error) {
	b := img.Bounds()
	rows := make([][]int, b.Dy())
	for y := range rows {
		rows[y] = make([]int, b.Dx())
		for x := range rows[y] {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			tile, ok := tileColors[c]
			if !ok {
				return nil, fmt.Errorf("%w: unknown colour %v at (%d,%d)", model.ErrInvalidGrid, c, x, y)
			}
			rows[y][x] = tile
		}
	}
	return model.NewGrid(rows)
}
