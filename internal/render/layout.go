package render

import (
	"math"
	"math/rand/v2"

	"cairometro/internal/graph"
)

// Point is a position in drawing coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps vertex ids to positions inside a Width x Height canvas.
type Layout struct {
	Width     float64
	Height    float64
	Positions map[string]Point
}

// Options control SpringLayout.
type Options struct {
	Seed       uint64
	Iterations int
	Width      float64
	Height     float64
	Margin     float64
}

// DefaultOptions returns the layout used for the metro map.
func DefaultOptions() Options {
	return Options{
		Seed:       42,
		Iterations: 300,
		Width:      1000,
		Height:     700,
		Margin:     40,
	}
}

// SpringLayout places vertices with the Fruchterman-Reingold force model:
// all vertices repel, adjacent ones attract, and the step size cools
// linearly. Initial positions come from a PCG generator seeded with
// opts.Seed and vertices are processed in insertion order, so the same
// graph and options always give the same layout.
func SpringLayout(g *graph.Graph, opts Options) Layout {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Iterations <= 0 {
		opts.Iterations = def.Iterations
	}
	if opts.Margin < 0 || 2*opts.Margin >= math.Min(opts.Width, opts.Height) {
		opts.Margin = 0
	}

	vertices := g.Vertices()
	layout := Layout{Width: opts.Width, Height: opts.Height, Positions: make(map[string]Point, len(vertices))}
	switch len(vertices) {
	case 0:
		return layout
	case 1:
		layout.Positions[vertices[0]] = Point{X: opts.Width / 2, Y: opts.Height / 2}
		return layout
	}

	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	edges := g.Edges()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	pos := make([]Point, len(vertices))
	for i := range pos {
		pos[i] = Point{X: rng.Float64() * opts.Width, Y: rng.Float64() * opts.Height}
	}

	k := math.Sqrt(opts.Width * opts.Height / float64(len(vertices)))
	temp := opts.Width / 10
	cooling := temp / float64(opts.Iterations+1)
	disp := make([]Point, len(vertices))

	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range disp {
			disp[i] = Point{}
		}

		for i := range pos {
			for j := i + 1; j < len(pos); j++ {
				dx, dy, d := delta(pos[i], pos[j])
				f := k * k / d
				disp[i].X += dx / d * f
				disp[i].Y += dy / d * f
				disp[j].X -= dx / d * f
				disp[j].Y -= dy / d * f
			}
		}

		for _, e := range edges {
			i, j := index[e.From], index[e.To]
			dx, dy, d := delta(pos[i], pos[j])
			f := d * d / k
			disp[i].X -= dx / d * f
			disp[i].Y -= dy / d * f
			disp[j].X += dx / d * f
			disp[j].Y += dy / d * f
		}

		for i := range pos {
			length := math.Hypot(disp[i].X, disp[i].Y)
			if length > 0 {
				step := math.Min(length, temp)
				pos[i].X += disp[i].X / length * step
				pos[i].Y += disp[i].Y / length * step
			}
			pos[i].X = clamp(pos[i].X, 0, opts.Width)
			pos[i].Y = clamp(pos[i].Y, 0, opts.Height)
		}
		temp -= cooling
	}

	fit(pos, opts)
	for i, v := range vertices {
		layout.Positions[v] = pos[i]
	}
	return layout
}

// delta returns the vector from b to a and its length, floored to keep
// coincident vertices from dividing by zero.
func delta(a, b Point) (dx, dy, d float64) {
	dx, dy = a.X-b.X, a.Y-b.Y
	d = math.Hypot(dx, dy)
	if d < 0.01 {
		d = 0.01
	}
	return dx, dy, d
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// fit rescales positions to fill the canvas inside the margin while keeping
// the aspect ratio.
func fit(pos []Point, opts Options) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	innerW := opts.Width - 2*opts.Margin
	innerH := opts.Height - 2*opts.Margin
	spanX, spanY := maxX-minX, maxY-minY
	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(innerW/spanX, innerH/spanY)
	case spanX > 0:
		scale = innerW / spanX
	case spanY > 0:
		scale = innerH / spanY
	}

	offX := opts.Margin + (innerW-spanX*scale)/2
	offY := opts.Margin + (innerH-spanY*scale)/2
	for i := range pos {
		pos[i].X = offX + (pos[i].X-minX)*scale
		pos[i].Y = offY + (pos[i].Y-minY)*scale
	}
}
