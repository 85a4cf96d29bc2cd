package segment

// GrowRegions returns a mask of every maximal 4-connected region of pixels
// for which isWater holds. Each pixel is classified on its own color; a fill
// never inherits candidate status from its seed.
//
// The fill uses an explicit stack so regions spanning the whole image do
// not grow the goroutine stack.
func GrowRegions(buf Buffer, isWater func(r, g, b uint8) bool) []bool {
	w, h := buf.Width, buf.Height
	n := w * h
	water := make([]bool, n)
	visited := make([]bool, n)
	stack := make([]int, 0, 1024)

	for seed := 0; seed < n; seed++ {
		if visited[seed] || !isWater(buf.RGB(seed)) {
			continue
		}

		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[idx] {
				continue
			}
			visited[idx] = true

			if !isWater(buf.RGB(idx)) {
				continue
			}
			water[idx] = true

			x, y := idx%w, idx/w
			if x+1 < w && !visited[idx+1] {
				stack = append(stack, idx+1)
			}
			if x > 0 && !visited[idx-1] {
				stack = append(stack, idx-1)
			}
			if y+1 < h && !visited[idx+w] {
				stack = append(stack, idx+w)
			}
			if y > 0 && !visited[idx-w] {
				stack = append(stack, idx-w)
			}
		}
	}

	return water
}
