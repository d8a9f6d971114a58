package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngmaloney/velib-terminal/internal/models"
)

func TestNew_Empty(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestReplace_FullSnapshot(t *testing.T) {
	s := New()
	s.Replace([]models.Station{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	require.Equal(t, 3, s.Len())

	// A second snapshot discards the first entirely, duplicates included
	s.Replace([]models.Station{{Name: "B", StationCode: "1"}, {Name: "B", StationCode: "1"}})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}

func TestReplace_Empty(t *testing.T) {
	s := New()
	s.Replace([]models.Station{{Name: "A"}})
	s.Replace(nil)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.All())
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := New()
	input := []models.Station{{Name: "Original"}}
	s.Replace(input)

	input[0].Name = "Changed by caller"
	got := s.All()
	got[0].Name = "Changed by reader"

	assert.Equal(t, "Original", s.All()[0].Name)
}
