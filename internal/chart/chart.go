// Package chart renders line plots as fixed-size ASCII charts.
//
// The horizontal range is fixed when the chart is created; the vertical
// range is fitted to the plotted data.
//
//	chart.New(120, 40, 0, 100).LinePlot(points).Render(os.Stdout)
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrNoData is returned when rendering a chart with no points.
	ErrNoData = errors.New("chart: no data to plot")

	// ErrInvalidBounds is returned for a canvas smaller than 2x2 or an
	// empty horizontal range.
	ErrInvalidBounds = errors.New("chart: invalid bounds")
)

const plotMark = '*'

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// Chart is a character-cell canvas of width x height.
type Chart struct {
	width, height int
	xmin, xmax    float64
	series        [][]Point
}

// New creates a chart with a width x height cell canvas covering
// [xmin, xmax] horizontally.
func New(width, height int, xmin, xmax float64) *Chart {
	return &Chart{
		width:  width,
		height: height,
		xmin:   xmin,
		xmax:   xmax,
	}
}

// LinePlot adds a series whose consecutive points are joined by straight
// segments. The slice is copied.
func (c *Chart) LinePlot(points []Point) *Chart {
	c.series = append(c.series, append([]Point(nil), points...))
	return c
}

// Render draws the chart to w.
func (c *Chart) Render(w io.Writer) error {
	if c.width < 2 || c.height < 2 || !(c.xmax > c.xmin) {
		return fmt.Errorf("%w: %dx%d canvas over [%v, %v]", ErrInvalidBounds, c.width, c.height, c.xmin, c.xmax)
	}

	ymin, ymax, ok := c.yRange()
	if !ok {
		return ErrNoData
	}

	grid := make([][]byte, c.height)
	for i := range grid {
		grid[i] = bytes.Repeat([]byte{' '}, c.width)
	}

	for _, s := range c.series {
		// Non-finite points break the line.
		var prev *Point
		for i := range s {
			p := s[i]
			if !finite(p) {
				prev = nil
				continue
			}
			col, row := c.cell(p, ymin, ymax)
			if prev == nil {
				plot(grid, col, row)
			} else {
				pcol, prow := c.cell(*prev, ymin, ymax)
				drawLine(grid, pcol, prow, col, row)
			}
			prev = &s[i]
		}
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", c.width) + "+"
	b.WriteString(border)
	b.WriteByte('\n')
	for i, row := range grid {
		b.WriteByte('|')
		b.Write(row)
		b.WriteByte('|')
		switch i {
		case 0:
			fmt.Fprintf(&b, " %.1f", ymax)
		case c.height - 1:
			fmt.Fprintf(&b, " %.1f", ymin)
		}
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	left := fmt.Sprintf("%.1f", c.xmin)
	right := fmt.Sprintf("%.1f", c.xmax)
	gap := max(c.width+2-len(left)-len(right), 1)
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the chart, or returns the error text if it cannot be drawn.
func (c *Chart) String() string {
	var b strings.Builder
	if err := c.Render(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

// yRange returns the vertical extent of all finite points, and false when
// there are no points at all. A flat series is padded by one unit on each
// side; with no finite points the range is [-1, 1].
func (c *Chart) yRange() (ymin, ymax float64, ok bool) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, s := range c.series {
		for _, p := range s {
			ok = true
			if !finite(p) {
				continue
			}
			ymin = math.Min(ymin, p.Y)
			ymax = math.Max(ymax, p.Y)
		}
	}
	switch {
	case !ok:
		return 0, 0, false
	case ymin > ymax:
		return -1, 1, true
	case ymin == ymax:
		return ymin - 1, ymax + 1, true
	}
	return ymin, ymax, true
}

// cell maps a point to its canvas column and row; row 0 is the top.
// Points outside the canvas map outside [0, width) x [0, height).
func (c *Chart) cell(p Point, ymin, ymax float64) (col, row int) {
	fx := (p.X - c.xmin) / (c.xmax - c.xmin)
	fy := (ymax - p.Y) / (ymax - ymin)
	return int(math.Round(fx * float64(c.width-1))), int(math.Round(fy * float64(c.height-1)))
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func plot(grid [][]byte, col, row int) {
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = plotMark
}

// drawLine marks every cell on the segment between two cells (Bresenham).
func drawLine(grid [][]byte, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	errAcc := dx + dy
	for {
		plot(grid, x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
