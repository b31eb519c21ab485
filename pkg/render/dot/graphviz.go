package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// RenderSVG lays out and renders a DOT graph to SVG using Graphviz.
// Layout is delegated entirely to Graphviz; this package only produces the
// DOT text it consumes.
func RenderSVG(ctx context.Context, dotSrc string) ([]byte, error) {
	return renderFormat(ctx, dotSrc, graphviz.SVG)
}

// RenderPNG lays out and renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dotSrc string) ([]byte, error) {
	return renderFormat(ctx, dotSrc, graphviz.PNG)
}

func renderFormat(ctx context.Context, dotSrc string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
