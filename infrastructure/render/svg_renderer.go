// Package render turns infographic content into image bytes.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/fogleman/gg"

	"infograph-backend/application/ports"
)

// Layout limits
const (
	MaxStats   = 4
	MaxBullets = 8
	MaxSources = 4

	canvasWidth  = 800
	minHeight    = 420
	barHeight    = 20
	barGap       = 10
	bulletStep   = 20
	sourceStep   = 18
	labelX       = 40
	barX         = labelX + 200
	valueRoom    = 80
	barMaxWidth  = canvasWidth - barX - valueRoom
	bulletIndent = 40
)

// SVGRenderer draws the basic_v1 template. User text is entity-escaped
// character for character, so markup in a title renders literally and the
// output is always well-formed XML.
type SVGRenderer struct {
	pngOnce sync.Once
	png     []byte
	pngErr  error
}

var _ ports.ImageRenderer = (*SVGRenderer)(nil)

// NewSVGRenderer creates a renderer
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

// RenderSVG lays out title, prompt, stat bars, bullets and source URLs
func (r *SVGRenderer) RenderSVG(ctx context.Context, content ports.InfographicContent) ([]byte, error) {
	stats := content.Stats
	if len(stats) > MaxStats {
		stats = stats[:MaxStats]
	}
	bullets := content.Bullets
	if len(bullets) > MaxBullets {
		bullets = bullets[:MaxBullets]
	}
	sources := content.SourceURLs
	if len(sources) > MaxSources {
		sources = sources[:MaxSources]
	}

	var body bytes.Buffer
	y := 80

	fmt.Fprintf(&body, `<text x="%d" y="40" font-family="Arial" font-size="24" fill="#111">%s</text>`+"\n",
		labelX, r.text(content.Title))

	if prompt := strings.TrimSpace(content.Prompt); prompt != "" {
		fmt.Fprintf(&body, `<text x="%d" y="64" font-family="Arial" font-size="14" fill="#555">%s</text>`+"\n",
			labelX, r.text(prompt))
		y = 100
	}

	maxValue := 0.0
	for _, s := range stats {
		if s.Value > maxValue {
			maxValue = s.Value
		}
	}
	for i, s := range stats {
		rowY := y + i*(barHeight+barGap)
		width := 0
		if s.Value > 0 && maxValue > 0 {
			width = int(float64(barMaxWidth) * (s.Value / maxValue))
		}
		fmt.Fprintf(&body, `<text x="%d" y="%d" font-family="Arial" font-size="12" fill="#333">%s</text>`+"\n",
			labelX, rowY+14, r.text(s.Label))
		fmt.Fprintf(&body, `<rect x="%d" y="%d" width="%d" height="%d" fill="#4f8ef7" rx="4"/>`+"\n",
			barX, rowY, width, barHeight)
		fmt.Fprintf(&body, `<text x="%d" y="%d" font-family="Arial" font-size="12" fill="#111">%.1f</text>`+"\n",
			barX+10+width, rowY+14, s.Value)
	}
	y += len(stats)*(barHeight+barGap) + 40

	for i, b := range bullets {
		fmt.Fprintf(&body, `<text x="%d" y="%d" font-family="Arial" font-size="14" fill="#222">• %s</text>`+"\n",
			bulletIndent, y+i*bulletStep, r.text(b))
	}
	y += len(bullets) * bulletStep

	if len(sources) > 0 {
		y += 20
		fmt.Fprintf(&body, `<text x="%d" y="%d" font-family="Arial" font-size="14" font-weight="bold" fill="#111">Sources</text>`+"\n",
			labelX, y)
		for i, u := range sources {
			fmt.Fprintf(&body, `<text x="%d" y="%d" font-family="Arial" font-size="11" fill="#4f8ef7">%s</text>`+"\n",
				labelX, y+(i+1)*sourceStep, r.text(u))
		}
		y += len(sources) * sourceStep
	}

	height := y + 40
	if height < minHeight {
		height = minHeight
	}

	var out bytes.Buffer
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", canvasWidth, height)
	out.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	out.Write(body.Bytes())
	out.WriteString("</svg>\n")

	return out.Bytes(), nil
}

// RenderPNG returns a fixed 1x1 transparent PNG; rasterizing the SVG is
// out of scope for this backend.
func (r *SVGRenderer) RenderPNG(ctx context.Context, svg []byte) ([]byte, error) {
	r.pngOnce.Do(func() {
		dc := gg.NewContext(1, 1)
		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			r.pngErr = fmt.Errorf("failed to encode PNG: %w", err)
			return
		}
		r.png = buf.Bytes()
	})
	if r.pngErr != nil {
		return nil, r.pngErr
	}
	return append([]byte(nil), r.png...), nil
}

func (r *SVGRenderer) text(s string) string {
	return html.EscapeString(s)
}
