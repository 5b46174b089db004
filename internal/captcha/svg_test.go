package captcha

import (
	"encoding/xml"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *Renderer {
	r := NewRenderer()
	r.intN = rand.New(rand.NewPCG(1, 2)).IntN
	return r
}

func TestRender_ContainsEveryCharacter(t *testing.T) {
	svg := string(seeded().Render("AB3F9"))

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, noiseLines, strings.Count(svg, "<line "))
	assert.Equal(t, 5, strings.Count(svg, "<text "))
	for _, ch := range []string{">A<", ">B<", ">3<", ">F<", ">9<"} {
		assert.Contains(t, svg, ch)
	}
}

func TestRender_WellFormedXML(t *testing.T) {
	svg := seeded().Render("XY<&")

	dec := xml.NewDecoder(strings.NewReader(string(svg)))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			break
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, seeded().Render("ABCDE"), seeded().Render("ABCDE"))
}
