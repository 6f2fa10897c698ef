package ranking_test

import (
	"testing"

	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/stretchr/testify/assert"
)

func TestSideOf(t *testing.T) {
	doubles := ranking.Match{P1A: "Ana", P1B: "Bruno", P2A: "Carla", P2B: "Diego"}
	singles := ranking.Match{P1A: "Ana", P2A: "Carla"}

	assert.Equal(t, ranking.SideA, ranking.SideOf(doubles, "Ana"))
	assert.Equal(t, ranking.SideA, ranking.SideOf(doubles, "Bruno"))
	assert.Equal(t, ranking.SideB, ranking.SideOf(doubles, "Carla"))
	assert.Equal(t, ranking.SideB, ranking.SideOf(doubles, "Diego"))
	assert.Equal(t, ranking.SideNone, ranking.SideOf(doubles, "Elisa"))

	assert.Equal(t, ranking.SideA, ranking.SideOf(singles, "Ana"))
	assert.Equal(t, ranking.SideB, ranking.SideOf(singles, "Carla"))

	// An empty name must not match the empty partner slots.
	assert.Equal(t, ranking.SideNone, ranking.SideOf(singles, ""))
}

func TestSideOf_NameOnBothSidesResolvesToSideA(t *testing.T) {
	anomaly := ranking.Match{P1A: "Ana", P2A: "Ana", Score1: 1, Score2: 3}
	assert.Equal(t, ranking.SideA, ranking.SideOf(anomaly, "Ana"))
	assert.False(t, ranking.WonBy(anomaly, "Ana"))
}

func TestWonBy(t *testing.T) {
	m := ranking.Match{P1A: "Ana", P1B: "Bruno", P2A: "Carla", P2B: "Diego", Score1: 6, Score2: 3}

	assert.True(t, ranking.WonBy(m, "Ana"))
	assert.True(t, ranking.WonBy(m, "Bruno"), "second name on the winning side is credited too")
	assert.False(t, ranking.WonBy(m, "Carla"))
	assert.False(t, ranking.WonBy(m, "Elisa"), "absent player never wins")
}

func TestWonBy_TieCreditsNobody(t *testing.T) {
	m := ranking.Match{P1A: "Ana", P2A: "Carla", Score1: 2, Score2: 2}
	assert.False(t, ranking.WonBy(m, "Ana"))
	assert.False(t, ranking.WonBy(m, "Carla"))
}
