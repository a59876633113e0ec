package render

import (
	"bytes"
	"context"
	"encoding/xml"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infograph-backend/application/ports"
)

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func TestRenderSVG_Basic(t *testing.T) {
	r := NewSVGRenderer()

	svg, err := r.RenderSVG(context.Background(), ports.InfographicContent{
		Title:   "EV Market Trends",
		Stats:   []ports.Stat{{Label: "Sales", Value: 45.2}},
		Bullets: []string{"Point one"},
	})
	require.NoError(t, err)

	out := string(svg)
	assert.Contains(t, out, "EV Market Trends")
	assert.Contains(t, out, "45.2")
	assert.Contains(t, out, "• Point one")
	assert.Contains(t, out, `width="800"`)
	assert.NotContains(t, out, "Sources")
	wellFormed(t, svg)
}

func TestRenderSVG_Deterministic(t *testing.T) {
	r := NewSVGRenderer()
	content := ports.InfographicContent{
		Title:      "T",
		Prompt:     "prompt",
		Stats:      []ports.Stat{{Label: "a", Value: 1}, {Label: "b", Value: 2}},
		Bullets:    []string{"x"},
		SourceURLs: []string{"https://example.com/a"},
	}

	first, err := r.RenderSVG(context.Background(), content)
	require.NoError(t, err)
	second, err := r.RenderSVG(context.Background(), content)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderSVG_Limits(t *testing.T) {
	r := NewSVGRenderer()
	content := ports.InfographicContent{Title: "T"}
	for i := 0; i < 6; i++ {
		content.Stats = append(content.Stats, ports.Stat{Label: "stat" + string(rune('A'+i)), Value: float64(i + 1)})
	}
	for i := 0; i < 10; i++ {
		content.Bullets = append(content.Bullets, "bullet"+string(rune('A'+i)))
	}
	for i := 0; i < 6; i++ {
		content.SourceURLs = append(content.SourceURLs, "https://example.com/"+string(rune('a'+i)))
	}

	svg, err := r.RenderSVG(context.Background(), content)
	require.NoError(t, err)
	out := string(svg)

	assert.Contains(t, out, "statD")
	assert.NotContains(t, out, "statE")
	assert.Contains(t, out, "bulletH")
	assert.NotContains(t, out, "bulletI")
	assert.Contains(t, out, "https://example.com/d")
	assert.NotContains(t, out, "https://example.com/e")
}

func TestRenderSVG_BarScaling(t *testing.T) {
	r := NewSVGRenderer()

	svg, err := r.RenderSVG(context.Background(), ports.InfographicContent{
		Title: "T",
		Stats: []ports.Stat{{Label: "max", Value: 10}, {Label: "half", Value: 5}, {Label: "neg", Value: -3}},
	})
	require.NoError(t, err)
	out := string(svg)

	assert.Contains(t, out, `width="480" height="20"`)
	assert.Contains(t, out, `width="240" height="20"`)
	assert.Contains(t, out, `width="0" height="20"`)
	assert.Contains(t, out, "-3.0")
}

func TestRenderSVG_EscapesMarkup(t *testing.T) {
	r := NewSVGRenderer()

	svg, err := r.RenderSVG(context.Background(), ports.InfographicContent{
		Title:   `<script>alert(1)</script>Cars & "Trucks"`,
		Bullets: []string{"a < b"},
	})
	require.NoError(t, err)

	out := string(svg)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;Cars &amp; &#34;Trucks&#34;")
	assert.Contains(t, out, "• a &lt; b")
	wellFormed(t, svg)
}

func TestRenderSVG_KeepsTextAfterAngleBracket(t *testing.T) {
	r := NewSVGRenderer()

	svg, err := r.RenderSVG(context.Background(), ports.InfographicContent{
		Title:   "Revenue<Costs in Q3",
		Stats:   []ports.Stat{{Label: "x<y", Value: 1}},
		Bullets: []string{"a<b", "c>d & e"},
	})
	require.NoError(t, err)

	out := string(svg)
	assert.Contains(t, out, ">Revenue&lt;Costs in Q3</text>")
	assert.Contains(t, out, ">x&lt;y</text>")
	assert.Contains(t, out, ">• a&lt;b</text>")
	assert.Contains(t, out, ">• c&gt;d &amp; e</text>")
	wellFormed(t, svg)
}

func TestRenderSVG_ValueLabelsStayOnCanvas(t *testing.T) {
	r := NewSVGRenderer()

	svg, err := r.RenderSVG(context.Background(), ports.InfographicContent{
		Title: "T",
		Stats: []ports.Stat{{Label: "max", Value: 99999.9}, {Label: "min", Value: 1}},
	})
	require.NoError(t, err)

	var doc struct {
		Width int `xml:"width,attr"`
		Texts []struct {
			X     int    `xml:"x,attr"`
			Value string `xml:",chardata"`
		} `xml:"text"`
	}
	require.NoError(t, xml.Unmarshal(svg, &doc))
	require.NotEmpty(t, doc.Texts)

	longest := len("99999.9") * 8
	for _, text := range doc.Texts {
		if text.Value == "99999.9" {
			assert.LessOrEqual(t, text.X+longest, doc.Width)
			return
		}
	}
	t.Fatal("value label not rendered")
}

func TestRenderPNG_Placeholder(t *testing.T) {
	r := NewSVGRenderer()

	data, err := r.RenderPNG(context.Background(), []byte("<svg/>"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())

	again, err := r.RenderPNG(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}
