package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GardenPlot/internal/model"
)

func suggestCatalog() *model.Catalog {
	return &model.Catalog{
		Plants: []model.PlantDefinition{
			{ID: "tomato", Name: "Tomato", Width: 0.5, Companions: []string{"basil"}, Avoid: []string{"potato"}},
			{ID: "basil", Name: "Basil", Width: 0.25, Companions: []string{"tomato"}},
			{ID: "potato", Name: "Potato", Width: 0.35, Avoid: []string{"tomato"}},
		},
	}
}

func suggestGrid() model.Grid {
	return model.NewGrid(model.GardenSettings{Width: 3.0, Length: 3.0, GridSize: 0.5}) // 6x6
}

func TestSuggestScoresCompanionAdjacency(t *testing.T) {
	cat := suggestCatalog()
	plants := []model.PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 2, Y: 2, Size: 1},
	}

	got := Suggest("basil", plants, suggestGrid(), cat, 10)
	require.NotEmpty(t, got)

	// All eight cells around the tomato score +1; nothing else does.
	assert.Len(t, got, 8)
	for _, s := range got {
		assert.Equal(t, 1, s.Score)
		assert.Equal(t, []string{"Tomato"}, s.Companions)
	}
}

func TestSuggestAvoidsConflicts(t *testing.T) {
	cat := suggestCatalog()
	// Tomato and potato adjacent in a corner; a cell next to both scores
	// +1 (basil beside tomato) -2 (beside potato) and drops out.
	plants := []model.PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 0, Y: 0, Size: 1},
		{ID: "b", TypeID: "potato", X: 0, Y: 1, Size: 1},
	}

	got := Suggest("basil", plants, suggestGrid(), cat, 10)
	for _, s := range got {
		assert.NotContains(t, s.Conflicts, "Potato",
			"suggested cell (%d,%d) touches a conflicting neighbor", s.X, s.Y)
	}
}

func TestSuggestBestCellFirst(t *testing.T) {
	cat := suggestCatalog()
	// Two tomatoes one cell apart: the cell between them borders both and
	// should outrank the single-neighbor cells.
	plants := []model.PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 1, Y: 1, Size: 1},
		{ID: "b", TypeID: "tomato", X: 3, Y: 1, Size: 1},
	}

	got := Suggest("basil", plants, suggestGrid(), cat, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, 2, got[0].Score)
	assert.Equal(t, 2, got[0].X)
	assert.Len(t, got, 3, "limit should truncate the candidate list")
}

func TestSuggestSkipsOccupiedCells(t *testing.T) {
	cat := suggestCatalog()
	plants := []model.PlantPlacement{
		{ID: "a", TypeID: "tomato", X: 0, Y: 0, Size: 1},
		{ID: "b", TypeID: "basil", X: 1, Y: 0, Size: 1},
	}

	got := Suggest("basil", plants, suggestGrid(), cat, 20)
	for _, s := range got {
		assert.False(t, (s.X == 0 && s.Y == 0) || (s.X == 1 && s.Y == 0),
			"occupied cell (%d,%d) must not be suggested", s.X, s.Y)
	}
}

func TestSuggestUnknownTypeOrBadLimit(t *testing.T) {
	cat := suggestCatalog()
	assert.Nil(t, Suggest("dragonfruit", nil, suggestGrid(), cat, 5))
	assert.Nil(t, Suggest("basil", nil, suggestGrid(), cat, 0))
}

func TestSuggestEmptyGardenHasNoSuggestions(t *testing.T) {
	cat := suggestCatalog()
	// With no neighbors every score is zero, and zero-score cells are not
	// worth suggesting.
	assert.Empty(t, Suggest("basil", nil, suggestGrid(), cat, 5))
}
