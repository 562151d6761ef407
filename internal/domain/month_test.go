package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonth_NavigateRollsOverYears(t *testing.T) {
	tests := []struct {
		name string
		from Month
		dir  Direction
		want Month
	}{
		{"next mid-year", Month{2024, time.June}, DirectionNext, Month{2024, time.July}},
		{"prev mid-year", Month{2024, time.June}, DirectionPrev, Month{2024, time.May}},
		{"next from december", Month{2024, time.December}, DirectionNext, Month{2025, time.January}},
		{"prev from january", Month{2024, time.January}, DirectionPrev, Month{2023, time.December}},
		{"unknown direction", Month{2024, time.March}, Direction("sideways"), Month{2024, time.March}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Navigate(tt.dir))
		})
	}
}

func TestMonth_RangeIsInclusiveOfLastDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	m := Month{Year: 2024, Month: time.February}

	start := m.Start(loc)
	end := m.End(loc)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 29, end.Day(), "2024 is a leap year")
	assert.Equal(t, 23, end.Hour())
	assert.True(t, m.Contains(time.Date(2024, time.February, 29, 23, 59, 59, 0, loc)))
	assert.False(t, m.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, loc)))
	assert.False(t, m.Contains(time.Date(2024, time.January, 31, 23, 59, 59, 0, loc)))
	assert.Equal(t, 29, m.Days())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.June}, m)
	assert.Equal(t, "2024-06", m.String())
	assert.Equal(t, "June 2024", m.Label())

	_, err = ParseMonth("June 2024")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("next")
	require.NoError(t, err)
	assert.Equal(t, DirectionNext, d)

	_, err = ParseDirection("forward")
	assert.Error(t, err)
}
