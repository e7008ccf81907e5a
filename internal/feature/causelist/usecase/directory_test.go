package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplexes(t *testing.T) {
	t.Parallel()

	list := Complexes()
	require.Len(t, list, 6)
	assert.Equal(t, "NDC", list[0].Code)
	assert.Equal(t, "North Delhi Courts", list[5].Name)

	list[0].Name = "changed"
	assert.Equal(t, "New Delhi Courts Complex", Complexes()[0].Name)
}

func TestJudges(t *testing.T) {
	t.Parallel()

	list, err := Judges("EDC")
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, "J01", list[0].Code)
	assert.Equal(t, "Court Room 6", list[5].CourtRoom)

	_, err = Judges("XYZ")
	assert.ErrorIs(t, err, ErrUnknownComplex)
}

func TestFindJudge(t *testing.T) {
	t.Parallel()

	j, err := findJudge("NDC", "J04")
	require.NoError(t, err)
	assert.Equal(t, "Hon'ble Ms. Neha Gupta", j.Name)

	_, err = findJudge("NDC", "J99")
	assert.ErrorIs(t, err, ErrUnknownJudge)
}
