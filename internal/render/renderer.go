package render

import (
	"io"

	"cairometro/internal/metro"
)

// Renderer draws maps of one network. The layout is computed once at
// construction because the network never changes.
type Renderer struct {
	network *metro.Network
	layout  Layout
}

// NewRenderer lays out network with opts.
func NewRenderer(network *metro.Network, opts Options) *Renderer {
	return &Renderer{
		network: network,
		layout:  SpringLayout(network.Graph(), opts),
	}
}

// Layout returns the precomputed layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Scene returns the scene for path without drawing it.
func (r *Renderer) Scene(path []metro.Station) Scene {
	return NewScene(r.network, path)
}

// WriteSVG draws the network with path highlighted.
func (r *Renderer) WriteSVG(w io.Writer, path []metro.Station) error {
	return WriteSVG(w, r.Scene(path), r.layout)
}
