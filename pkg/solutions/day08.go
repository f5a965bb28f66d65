package solutions

import (
	"fmt"
	"strconv"
	"strings"
)

// Space Image Format pixels.
const (
	pixelBlack       = 0
	pixelWhite       = 1
	pixelTransparent = 2
)

// spaceImage is a stack of layers, front layer first.
type spaceImage struct {
	width  int
	height int
	layers [][]int8
}

func parseSpaceImage(input string, width, height int) (*spaceImage, error) {
	data := strings.TrimSpace(input)
	size := width * height

	var layers [][]int8
	for len(data) >= size {
		layer := make([]int8, size)
		for i, c := range data[:size] {
			if c < '0' || c > '2' {
				return nil, fmt.Errorf("invalid pixel: %c", c)
			}
			layer[i] = int8(c - '0')
		}
		layers = append(layers, layer)
		data = data[size:]
	}

	if len(data) != 0 {
		return nil, fmt.Errorf("incomplete layer: %d trailing pixels", len(data))
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("image has no layers")
	}

	return &spaceImage{
		width:  width,
		height: height,
		layers: layers,
	}, nil
}

func countPixels(layer []int8, pixel int8) int {
	n := 0
	for _, px := range layer {
		if px == pixel {
			n++
		}
	}
	return n
}

// merge flattens the layer stack: the first non-transparent pixel in each
// position wins.
func (img *spaceImage) merge() []int8 {
	merged := make([]int8, len(img.layers[0]))
	copy(merged, img.layers[0])

	for _, layer := range img.layers[1:] {
		done := true
		for i, px := range layer {
			if merged[i] == pixelTransparent {
				merged[i] = px
				if px == pixelTransparent {
					done = false
				}
			}
		}
		if done {
			break
		}
	}

	return merged
}

// render draws a merged layer with block characters, the way the image is
// meant to be read.
func (img *spaceImage) render(layer []int8) string {
	var b strings.Builder
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			switch layer[y*img.width+x] {
			case pixelWhite:
				b.WriteRune('█')
			case pixelTransparent:
				b.WriteRune('░')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func solveDay8(input string) (Result, error) {
	img, err := parseSpaceImage(input, 25, 6)
	if err != nil {
		return Result{}, err
	}

	best := img.layers[0]
	for _, layer := range img.layers[1:] {
		if countPixels(layer, pixelBlack) < countPixels(best, pixelBlack) {
			best = layer
		}
	}
	part1 := countPixels(best, pixelWhite) * countPixels(best, pixelTransparent)

	return Result{
		Part1: strconv.Itoa(part1),
		Part2: "\n" + img.render(img.merge()),
	}, nil
}
