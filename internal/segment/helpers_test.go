package segment

import "math/rand"

var background = Color{240, 240, 240}

// newTestBuffer returns a 4-channel w×h buffer filled with c.
func newTestBuffer(w, h int, c Color) Buffer {
	pix := make([]uint8, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = c.R
		pix[i*4+1] = c.G
		pix[i*4+2] = c.B
		pix[i*4+3] = 255
	}
	return Buffer{Width: w, Height: h, Channels: 4, Pix: pix}
}

func setPixel(b Buffer, x, y int, c Color) {
	p := (y*b.Width + x) * b.Channels
	b.Pix[p] = c.R
	b.Pix[p+1] = c.G
	b.Pix[p+2] = c.B
}

func fillRect(b Buffer, x0, y0, x1, y1 int, c Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setPixel(b, x, y, c)
		}
	}
}

// randomBuffer mixes water tones, background and random colors.
func randomBuffer(rng *rand.Rand, w, h int) Buffer {
	b := newTestBuffer(w, h, background)
	for i := 0; i < w*h; i++ {
		var c Color
		switch rng.Intn(4) {
		case 0:
			c = WaterDeep
		case 1:
			c = background
		default:
			c = Color{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		}
		setPixel(b, i%w, i/w, c)
	}
	return b
}

func randomMask(rng *rand.Rand, n int, density float64) []bool {
	m := make([]bool, n)
	for i := range m {
		m[i] = rng.Float64() < density
	}
	return m
}

// bfsComponents labels mask by 4-connected breadth-first search and returns
// the component id of every pixel (-1 for background).
func bfsComponents(mask []bool, w, h int) []int {
	ids := make([]int, len(mask))
	for i := range ids {
		ids[i] = -1
	}
	next := 0
	queue := make([]int, 0, 64)
	for s := range mask {
		if !mask[s] || ids[s] >= 0 {
			continue
		}
		ids[s] = next
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			x, y := cur%w, cur/w
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				ni := ny*w + nx
				if mask[ni] && ids[ni] < 0 {
					ids[ni] = next
					queue = append(queue, ni)
				}
			}
		}
		next++
	}
	return ids
}

func countTrue(m []bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
