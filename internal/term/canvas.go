package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

type rgb struct {
	r, g, b float64
}

func (c rgb) blend(to color.RGBA, alpha float64) rgb {
	return rgb{
		r: c.r + (float64(to.R)-c.r)*alpha,
		g: c.g + (float64(to.G)-c.g)*alpha,
		b: c.b + (float64(to.B)-c.b)*alpha,
	}
}

func (c rgb) rgba() color.RGBA {
	q := func(v float64) uint8 {
		return uint8(math.Round(min(max(v, 0), 255)))
	}
	return color.RGBA{R: q(c.r), G: q(c.g), B: q(c.b), A: 255}
}

// Canvas is a grid of terminal cells standing in for a pixel surface. Each
// cell covers CellWidth×CellHeight simulation pixels.
type Canvas struct {
	CellWidth, CellHeight float64

	cols, rows int
	bg         color.RGBA
	cells      []rgb
}

// NewCanvas creates a cols×rows canvas filled with bg.
func NewCanvas(cols, rows int, cellWidth, cellHeight float64, bg color.RGBA) *Canvas {
	c := &Canvas{CellWidth: cellWidth, CellHeight: cellHeight, bg: bg}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size. Contents are cleared when the size changes.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows && c.cells != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]rgb, cols*rows)
	base := rgb{r: float64(c.bg.R), g: float64(c.bg.G), b: float64(c.bg.B)}
	for i := range c.cells {
		c.cells[i] = base
	}
}

// Grid is the size in cells.
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols) * c.CellWidth, float64(c.rows) * c.CellHeight
}

func (c *Canvas) Fade(col color.RGBA, alpha float64) {
	for i := range c.cells {
		c.cells[i] = c.cells[i].blend(col, alpha)
	}
}

// FillCircle paints every cell whose centre lies inside the circle, and
// always the cell under the centre so small sparks stay visible.
func (c *Canvas) FillCircle(x, y, radius float64, col color.RGBA, alpha float64) {
	if c.cols == 0 || c.rows == 0 || alpha <= 0 {
		return
	}
	alpha = min(alpha, 1)

	cx, cy := int(math.Floor(x/c.CellWidth)), int(math.Floor(y/c.CellHeight))
	c.paint(cx, cy, col, alpha)

	x0 := int(math.Floor((x - radius) / c.CellWidth))
	x1 := int(math.Floor((x + radius) / c.CellWidth))
	y0 := int(math.Floor((y - radius) / c.CellHeight))
	y1 := int(math.Floor((y + radius) / c.CellHeight))
	for row := y0; row <= y1; row++ {
		for cl := x0; cl <= x1; cl++ {
			if cl == cx && row == cy {
				continue
			}
			mx := (float64(cl) + 0.5) * c.CellWidth
			my := (float64(row) + 0.5) * c.CellHeight
			if math.Hypot(mx-x, my-y) <= radius {
				c.paint(cl, row, col, alpha)
			}
		}
	}
}

func (c *Canvas) paint(col, row int, to color.RGBA, alpha float64) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	i := row*c.cols + col
	c.cells[i] = c.cells[i].blend(to, alpha)
}

// At returns the colour of a cell; out-of-range cells read as background.
func (c *Canvas) At(col, row int) color.RGBA {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return c.bg
	}
	return c.cells[row*c.cols+col].rgba()
}

// Present copies the canvas onto the screen as coloured blank cells.
func (c *Canvas) Present(s tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			px := c.At(col, row)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B)))
			s.SetContent(col, row, ' ', nil, style)
		}
	}
	s.Show()
}
