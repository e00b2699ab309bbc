package metro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestNewStationIDNormalizesFormatting(t *testing.T) {
	assert.Equal(t, StationID("سعد زغلول"), NewStationID("  سعد   زغلول "))
	assert.Equal(t, StationID("سعد زغلول"), NewStationID("سعد\tزغلول"))
	// U+0627 ALEF followed by U+0654 HAMZA ABOVE composes to U+0623.
	assert.Equal(t, StationID("\u0623"), NewStationID("\u0627\u0654"))
	assert.Equal(t, StationID(""), NewStationID("   "))
}

func TestDefaultNetwork(t *testing.T) {
	network, err := DefaultNetwork()
	require.NoError(t, err)

	t.Run("stations and edges", func(t *testing.T) {
		assert.Equal(t, 78, network.StationCount())
		assert.Equal(t, 78, network.Graph().VertexCount())
		assert.Equal(t, 79, network.Graph().EdgeCount())
	})

	t.Run("junctions are shared vertices", func(t *testing.T) {
		names := make([]string, 0, 4)
		for _, s := range network.Junctions() {
			names = append(names, s.Name)
		}
		assert.ElementsMatch(t, []string{"الشهداء", "السادات", "العتبة", "ناصر"}, names)

		assert.Equal(t, []LineID{LineOne, LineTwo}, network.LinesFor(NewStationID("السادات")))
		assert.Equal(t, []LineID{LineTwo, LineThree}, network.LinesFor(NewStationID("العتبة")))
		assert.Equal(t, []LineID{LineOne, LineThree}, network.LinesFor(NewStationID("ناصر")))
		assert.Equal(t, []LineID{LineOne}, network.LinesFor(NewStationID("حلوان")))
	})

	t.Run("edges carry their line", func(t *testing.T) {
		line, ok := network.EdgeLine(NewStationID("الشهداء"), NewStationID("ناصر"))
		require.True(t, ok)
		assert.Equal(t, LineOne, line)

		line, ok = network.EdgeLine(NewStationID("ناصر"), NewStationID("العتبة"))
		require.True(t, ok)
		assert.Equal(t, LineThree, line)

		_, ok = network.EdgeLine(NewStationID("حلوان"), NewStationID("المنيب"))
		assert.False(t, ok)
	})

	t.Run("lines keep declaration order", func(t *testing.T) {
		lines := network.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "الخط الأول", lines[0].Name)
		assert.Equal(t, "المرج الجديدة", lines[0].Stations[0].Name)
		assert.Equal(t, "حلوان", lines[0].Stations[len(lines[0].Stations)-1].Name)

		l2, ok := network.Line(LineTwo)
		require.True(t, ok)
		assert.Len(t, l2.Stations, 20)

		_, ok = network.Line("L9")
		assert.False(t, ok)
	})

	t.Run("positions", func(t *testing.T) {
		i, ok := network.Position(LineOne, NewStationID("السادات"))
		require.True(t, ok)
		assert.Equal(t, 15, i)

		_, ok = network.Position(LineTwo, NewStationID("حلوان"))
		assert.False(t, ok)
	})

	t.Run("station lookup tolerates formatting", func(t *testing.T) {
		s, ok := network.Station(" السيدة  زينب")
		require.True(t, ok)
		assert.Equal(t, "السيدة زينب", s.Name)

		_, ok = network.Station("ميدان التحرير")
		assert.False(t, ok)
	})
}

func TestAllStationsSortedWithoutDuplicates(t *testing.T) {
	network, err := DefaultNetwork()
	require.NoError(t, err)

	stations := network.AllStations()
	require.Len(t, stations, network.StationCount())

	c := collate.New(language.Arabic)
	seen := make(map[StationID]bool, len(stations))
	for i, s := range stations {
		assert.False(t, seen[s.ID], "duplicate station %s", s.Name)
		seen[s.ID] = true
		if i > 0 {
			assert.LessOrEqual(t, c.CompareString(stations[i-1].Name, s.Name), 0)
		}
	}

	stations[0] = Station{}
	assert.NotEqual(t, Station{}, network.AllStations()[0])
}

func TestBuildNetworkLastLabelWins(t *testing.T) {
	network, err := BuildNetwork([]LineDefinition{
		{ID: "A", Stations: []string{"x", "y", "z"}},
		{ID: "B", Stations: []string{"y", "x"}},
	})
	require.NoError(t, err)

	line, ok := network.EdgeLine("x", "y")
	require.True(t, ok)
	assert.Equal(t, LineID("B"), line)
	assert.Equal(t, 2, network.Graph().EdgeCount())

	l, _ := network.Line("B")
	assert.Equal(t, "B", l.Name, "line name defaults to its id")
}

func TestBuildNetworkToleratesRepeatedNeighbors(t *testing.T) {
	for _, stations := range [][]string{{"a", "a", "b"}, {"a", " a", "b"}} {
		network, err := BuildNetwork([]LineDefinition{{ID: "A", Stations: stations}})
		require.NoError(t, err, "%q", stations)

		assert.Equal(t, 2, network.StationCount())
		assert.Equal(t, 1, network.Graph().EdgeCount())
		line, ok := network.EdgeLine("a", "b")
		require.True(t, ok)
		assert.Equal(t, LineID("A"), line)

		pos, ok := network.Position("A", "a")
		require.True(t, ok)
		assert.Equal(t, 0, pos)
		assert.Equal(t, []LineID{"A"}, network.LinesFor("a"))
	}
}

func TestBuildNetworkRejectsInvalidLines(t *testing.T) {
	tests := []struct {
		name string
		defs []LineDefinition
	}{
		{name: "empty id", defs: []LineDefinition{{Stations: []string{"a", "b"}}}},
		{name: "duplicate id", defs: []LineDefinition{
			{ID: "A", Stations: []string{"a", "b"}},
			{ID: "A", Stations: []string{"c", "d"}},
		}},
		{name: "no stations", defs: []LineDefinition{{ID: "A"}}},
		{name: "blank station", defs: []LineDefinition{{ID: "A", Stations: []string{"a", "  "}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := BuildNetwork(tt.defs)
			assert.ErrorIs(t, err, ErrInvalidLine)
			assert.Nil(t, network)
		})
	}
}
