package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"cairometro/internal/metro"
)

const (
	nodeColor      = "lightgray"
	nodeRadius     = 4
	pathNodeColor  = "lightblue"
	pathNodeRadius = 8
	pathEdgeColor  = "red"
	edgeWidth      = 2
	pathEdgeWidth  = 4
	labelFontSize  = 9
	titleFontSize  = 18
	svgFontFamily  = "Noto Naskh Arabic, Amiri, Tahoma, sans-serif"
)

// WriteSVG draws scene using layout. Labels are written as plain Unicode
// text; SVG viewers handle Arabic shaping and direction themselves.
// Coordinates are rounded to whole pixels.
func WriteSVG(w io.Writer, scene Scene, layout Layout) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	width, height := px(layout.Width), px(layout.Height)
	canvas.Start(width, height,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height),
		fmt.Sprintf(`font-family="%s"`, svgFontFamily))
	canvas.Title(scene.Title)
	canvas.Rect(0, 0, width, height, `fill="white"`)

	position := func(id metro.StationID) (Point, bool) {
		p, ok := layout.Positions[string(id)]
		return p, ok
	}

	canvas.Gid("edges")
	for _, e := range scene.Edges {
		if !e.Highlighted {
			drawEdge(canvas, e, position, e.Color, edgeWidth, "0.7")
		}
	}
	for _, e := range scene.Edges {
		if e.Highlighted {
			drawEdge(canvas, e, position, pathEdgeColor, pathEdgeWidth, "1")
		}
	}
	canvas.Gend()

	canvas.Gid("stations")
	for _, n := range scene.Nodes {
		if !n.Highlighted {
			drawNode(canvas, n, position, nodeColor, nodeRadius)
		}
	}
	for _, n := range scene.Nodes {
		if n.Highlighted {
			drawNode(canvas, n, position, pathNodeColor, pathNodeRadius)
		}
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, n := range scene.Nodes {
		p, ok := position(n.ID)
		if !ok {
			continue
		}
		canvas.Text(px(p.X), px(p.Y)-pathNodeRadius-2, n.Name,
			fmt.Sprintf(`font-size="%d"`, labelFontSize),
			`text-anchor="middle"`,
			`direction="rtl"`)
	}
	canvas.Gend()

	canvas.Text(width/2, titleFontSize+6, scene.Title,
		fmt.Sprintf(`font-size="%d"`, titleFontSize),
		`text-anchor="middle"`,
		`direction="rtl"`)
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func drawEdge(canvas *svg.SVG, e Edge, position func(metro.StationID) (Point, bool), color string, width int, opacity string) {
	a, okA := position(e.From)
	b, okB := position(e.To)
	if !okA || !okB {
		return
	}
	canvas.Line(px(a.X), px(a.Y), px(b.X), px(b.Y),
		fmt.Sprintf(`stroke="%s"`, escape(color)),
		fmt.Sprintf(`stroke-width="%d"`, width),
		fmt.Sprintf(`stroke-opacity="%s"`, opacity),
		fmt.Sprintf(`data-line="%s"`, escape(string(e.Line))))
}

func drawNode(canvas *svg.SVG, n Node, position func(metro.StationID) (Point, bool), color string, radius int) {
	p, ok := position(n.ID)
	if !ok {
		return
	}
	stroke := "none"
	if n.Junction {
		stroke = "black"
	}
	canvas.Circle(px(p.X), px(p.Y), radius,
		fmt.Sprintf(`fill="%s"`, color),
		fmt.Sprintf(`stroke="%s"`, stroke),
		fmt.Sprintf(`data-station="%s"`, escape(n.Name)))
}

func px(v float64) int {
	return int(math.Round(v))
}

// escape makes s safe inside a double-quoted attribute.
func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
