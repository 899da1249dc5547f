package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplelab/gamescout/internal/domain/game"
)

func TestRepo_GetAndLen(t *testing.T) {
	repo := New(map[string]*game.Record{
		"Catan":       {Name: "Catan"},
		"Carcassonne": {Name: "Carcassonne"},
	})

	rec, ok := repo.Get("Catan")
	require.True(t, ok)
	assert.Equal(t, "Catan", rec.Name)

	_, ok = repo.Get("catan")
	assert.False(t, ok, "lookups are case-sensitive")

	assert.Equal(t, 2, repo.Len())
}

func TestRepo_RecordsSortedByName(t *testing.T) {
	repo := New(map[string]*game.Record{
		"Zombicide":   {Name: "Zombicide"},
		"Agricola":    {Name: "Agricola"},
		"Carcassonne": {Name: "Carcassonne"},
	})

	var names []string
	for _, rec := range repo.Records() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"Agricola", "Carcassonne", "Zombicide"}, names)
}
