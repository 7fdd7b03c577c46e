package charts

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravdas090300/recipe-app/models"
)

func chartFixtures() []models.Recipe {
	return []models.Recipe{
		{Name: "Tomato Soup", CookingTime: 5, Ingredients: "tomato,salt,water"},
		{Name: "Beef Stew", CookingTime: 45, Ingredients: "beef,carrot,potato,onion,salt"},
		{Name: "Avocado Toast", CookingTime: 7, Ingredients: "bread, avocado, lemon"},
	}
}

func TestParseKind(t *testing.T) {
	for s, want := range map[string]Kind{"bar": KindBar, "pie": KindPie, "line": KindLine} {
		got, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "scatter", "Bar", "#1"} {
		_, err := ParseKind(s)
		assert.ErrorIs(t, err, ErrInvalidKind, "selector %q", s)
	}
}

func TestBuildRejectsInvalidKind(t *testing.T) {
	_, err := Build(chartFixtures(), Kind(0))
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = Build(chartFixtures(), Kind(42))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestBuildProducesPNG(t *testing.T) {
	for _, kind := range []Kind{KindBar, KindPie, KindLine} {
		p, err := Build(chartFixtures(), kind)
		require.NoError(t, err, "kind %s", kind)

		assert.Equal(t, "image/png", p.MediaType)
		assert.False(t, p.NoData)

		img, err := png.Decode(bytes.NewReader(p.Data))
		require.NoError(t, err, "kind %s should render decodable PNG", kind)
		assert.NotZero(t, img.Bounds().Dx())
	}
}

func TestBuildSinglePointLine(t *testing.T) {
	p, err := Build(chartFixtures()[:1], KindLine)
	require.NoError(t, err, "a single result is valid input, not a no-data case")
	assert.False(t, p.NoData)

	_, err = png.Decode(bytes.NewReader(p.Data))
	require.NoError(t, err)
}

func TestBuildZeroResultsPlaceholder(t *testing.T) {
	for _, kind := range []Kind{KindBar, KindPie, KindLine} {
		p, err := Build(nil, kind)
		require.NoError(t, err, "zero results must not fail for %s", kind)
		assert.True(t, p.NoData)

		_, err = png.Decode(bytes.NewReader(p.Data))
		require.NoError(t, err)
	}
}

func TestPieLegendAlwaysHasFourLabels(t *testing.T) {
	p, err := Build(chartFixtures(), KindPie)
	require.NoError(t, err)
	require.Len(t, p.Legend, 4)

	byLabel := map[string]LegendEntry{}
	for _, e := range p.Legend {
		byLabel[e.Label] = e
	}

	// Two Easy (soup, toast), one Hard (stew), none of the rest.
	assert.Equal(t, 2, byLabel["Easy"].Count)
	assert.InDelta(t, 66.7, byLabel["Easy"].Percent, 0.001)
	assert.Equal(t, 1, byLabel["Hard"].Count)
	assert.InDelta(t, 33.3, byLabel["Hard"].Percent, 0.001)
	assert.Equal(t, 0, byLabel["Medium"].Count)
	assert.Equal(t, 0, byLabel["Intermediate"].Count)
}

func TestPieLegendZeroTotal(t *testing.T) {
	p, err := Build(nil, KindPie)
	require.NoError(t, err)
	require.Len(t, p.Legend, 4)
	for _, e := range p.Legend {
		assert.Zero(t, e.Count)
		assert.Zero(t, e.Percent)
	}
}

func TestBuildDoesNotMutateResults(t *testing.T) {
	results := chartFixtures()
	_, err := Build(results, KindBar)
	require.NoError(t, err)
	assert.Equal(t, chartFixtures(), results)
}

func TestDataURI(t *testing.T) {
	p, err := Build(chartFixtures(), KindBar)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.DataURI(), "data:image/png;base64,"))
}
