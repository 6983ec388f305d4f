package dash

import "splitdash/hal"

// DrawChart draws a min/max autoscaled polyline of series into the pixel
// box at (x, y, w, h). Higher values map higher on screen. Fewer than two
// points draws nothing. Integer arithmetic only: this is the hottest loop
// in the render path and the target has no FPU.
func DrawChart(s hal.Surface, x, y, w, h int, series []uint8) {
	n := len(series)
	if n < 2 || w < 2 || h < 1 {
		return
	}

	min, max := series[0], series[0]
	for _, v := range series[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := int(max - min)
	if span == 0 {
		span = 1
	}

	px, py := mapPoint(0, series[0], min, span, x, y, w, h, n)
	for i := 1; i < n; i++ {
		cx, cy := mapPoint(i, series[i], min, span, x, y, w, h, n)
		drawLine(s, px, py, cx, cy)
		px, py = cx, cy
	}
}

// mapPoint normalizes point i into the pixel box with the vertical axis
// inverted.
func mapPoint(i int, v, min uint8, span, x, y, w, h, n int) (int, int) {
	cx := x + i*(w-1)/(n-1)
	cy := y + h - 1 - int(v-min)*(h-1)/span
	return cx, cy
}

// drawLine plots a segment with the integer Bresenham error-accumulator
// algorithm.
func drawLine(s hal.Surface, x0, y0, x1, y1 int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y0 - y1
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.SetPixel(x0, y0, true)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
