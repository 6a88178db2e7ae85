// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package balancer

import (
	"testing"
	"time"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/old-aged-footballers/team-balancer/pkg/constants"
	"github.com/old-aged-footballers/team-balancer/pkg/models"
)

func TestBalanceScore(t *testing.T) {
	tests := []struct {
		name  string
		teamA []models.PlayerRating
		teamB []models.PlayerRating
		want  float64
	}{
		{
			name:  "identical averages score perfect",
			teamA: ratingsBySkill(80, 60),
			teamB: ratingsBySkill(90, 50),
			want:  100,
		},
		{
			name:  "gap subtracts directly",
			teamA: ratingsBySkill(90, 80),
			teamB: ratingsBySkill(70, 60),
			want:  80,
		},
		{
			name:  "gap above one hundred floors at zero",
			teamA: []models.PlayerRating{{SkillRating: 150}},
			teamB: []models.PlayerRating{{SkillRating: 10}},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, balanceScore(tt.teamA, tt.teamB), 1e-9)
		})
	}
}

func TestTeamChemistryScore(t *testing.T) {
	withChemistry := func(pairValue float64) []models.PlayerRating {
		return []models.PlayerRating{
			{ID: "p1", TeamChemistry: map[string]float64{"p2": pairValue}},
			{ID: "p2", TeamChemistry: map[string]float64{"p1": pairValue}},
		}
	}

	tests := []struct {
		name string
		team []models.PlayerRating
		want float64
	}{
		{name: "single player is neutral", team: ratingsBySkill(80), want: 50},
		{name: "no history is neutral", team: ratingsBySkill(80, 70), want: 50},
		{name: "positive chemistry scales up", team: withChemistry(2), want: 70},
		{name: "strong chemistry clamps at one hundred", team: withChemistry(8), want: 100},
		{name: "bad chemistry clamps at zero", team: withChemistry(-8), want: 0},
		{
			name: "one-sided history averages with the missing side",
			team: []models.PlayerRating{
				{ID: "p1", TeamChemistry: map[string]float64{"p2": 4}},
				{ID: "p2", TeamChemistry: map[string]float64{}},
			},
			// (4+0)/2 = 2 per pair, 50 + 2*10
			want: 70,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, teamChemistryScore(tt.team), 1e-9)
		})
	}
}

func TestRotationScore(t *testing.T) {
	teamA := []string{"p1", "p2"}
	teamB := []string{"p3", "p4"}
	on := func(n int, a, b []string) models.Game {
		return models.Game{
			ID:    string(rune('a' + n)),
			Date:  time.Date(2025, time.April, 1+n, 19, 0, 0, 0, time.UTC),
			TeamA: models.TeamInfo{Players: a},
			TeamB: models.TeamInfo{Players: b},
		}
	}

	t.Run("no history is neutral", func(t *testing.T) {
		assert.InDelta(t, 50, rotationScore(teamA, teamB, nil), 1e-9)
	})

	t.Run("repeating last game scores zero", func(t *testing.T) {
		games := []models.Game{on(0, teamA, teamB)}
		assert.InDelta(t, 0, rotationScore(teamA, teamB, games), 1e-9)
	})

	t.Run("swapped sides still count as repetition", func(t *testing.T) {
		games := []models.Game{on(0, teamB, teamA)}
		assert.InDelta(t, 0, rotationScore(teamA, teamB, games), 1e-9)
	})

	t.Run("novel composition scores full", func(t *testing.T) {
		games := []models.Game{on(0, []string{"p5", "p6"}, []string{"p7", "p8"})}
		assert.InDelta(t, 100, rotationScore(teamA, teamB, games), 1e-9)
	})

	t.Run("only the latest games are compared", func(t *testing.T) {
		// four games: the oldest repeats the candidate exactly, the three
		// most recent share no players. Passed out of order on purpose.
		games := []models.Game{
			on(2, []string{"p5", "p6"}, []string{"p7", "p8"}),
			on(0, teamA, teamB),
			on(3, []string{"p5", "p8"}, []string{"p6", "p7"}),
			on(1, []string{"p5", "p7"}, []string{"p6", "p8"}),
		}
		assert.InDelta(t, 100, rotationScore(teamA, teamB, games), 1e-9)
	})

	t.Run("partial overlap averages across the window", func(t *testing.T) {
		// one of two games matches the candidate exactly: (100+0)/2 = 50
		games := []models.Game{
			on(0, teamA, teamB),
			on(1, []string{"p5", "p6"}, []string{"p7", "p8"}),
		}
		assert.InDelta(t, 50, rotationScore(teamA, teamB, games), 1e-9)
	})
}

func TestTeamSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		team1 []string
		team2 []string
		want  float64
	}{
		{name: "identical", team1: []string{"a", "b"}, team2: []string{"a", "b"}, want: 100},
		{name: "disjoint", team1: []string{"a", "b"}, team2: []string{"c", "d"}, want: 0},
		{name: "half overlap", team1: []string{"a", "b"}, team2: []string{"b", "c"}, want: 50},
		{name: "scaled by larger side", team1: []string{"a"}, team2: []string{"a", "b", "c", "d"}, want: 25},
		{name: "empty team", team1: nil, team2: []string{"a"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, teamSimilarity(tt.team1, tt.team2), 1e-9)
		})
	}
}

func TestBuildReasoning(t *testing.T) {
	tests := []struct {
		name      string
		balance   float64
		chemistry float64
		rotation  float64
		want      []string
	}{
		{
			name: "everything high", balance: 85, chemistry: 75, rotation: 72,
			want: []string{
				constants.ReasonBalanceExcellent,
				constants.ReasonChemistryStrong,
				constants.ReasonRotationGood,
			},
		},
		{
			name: "middle bands", balance: 65, chemistry: 55, rotation: 55,
			want: []string{
				constants.ReasonBalanceGood,
				constants.ReasonChemistryMixed,
				constants.ReasonRotationModerate,
			},
		},
		{
			name: "everything low", balance: 30, chemistry: 20, rotation: 10,
			want: []string{
				constants.ReasonBalancePoor,
				constants.ReasonChemistryLimited,
				constants.ReasonRotationLow,
			},
		},
		{
			name: "thresholds are inclusive", balance: 80, chemistry: 70, rotation: 70,
			want: []string{
				constants.ReasonBalanceExcellent,
				constants.ReasonChemistryStrong,
				constants.ReasonRotationGood,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildReasoning(tt.balance, tt.chemistry, tt.rotation))
		})
	}
}

func TestEvaluateCandidate_WeightBlend(t *testing.T) {
	c := candidate{
		strategy: StrategyAlternating,
		teamA: []models.PlayerRating{
			{ID: "p1", SkillRating: 90},
			{ID: "p2", SkillRating: 80},
		},
		teamB: []models.PlayerRating{
			{ID: "p3", SkillRating: 70},
			{ID: "p4", SkillRating: 60},
		},
	}

	// all weight on skill balance: total equals the balance score
	opts := models.BalancingOptions{
		SkillWeight:     swag.Float64(1),
		ChemistryWeight: swag.Float64(0),
		RotationWeight:  swag.Float64(0),
	}
	opts.SetDefaultValues()

	s := evaluateCandidate(c, nil, opts)

	require.Equal(t, []string{"p1", "p2"}, s.TeamA)
	require.Equal(t, []string{"p3", "p4"}, s.TeamB)
	assert.InDelta(t, 80, s.BalanceScore, 1e-9)
	assert.InDelta(t, 50, s.ChemistryScore, 1e-9)
	assert.InDelta(t, 50, s.RotationScore, 1e-9)
	assert.InDelta(t, s.BalanceScore, s.TotalScore, 1e-9)
}

func TestEvaluateCandidate_DefaultWeights(t *testing.T) {
	c := candidate{
		strategy: StrategyAlternating,
		teamA: []models.PlayerRating{
			{ID: "p1", SkillRating: 80},
			{ID: "p2", SkillRating: 60},
		},
		teamB: []models.PlayerRating{
			{ID: "p3", SkillRating: 90},
			{ID: "p4", SkillRating: 50},
		},
	}
	opts := models.BalancingOptions{}
	opts.SetDefaultValues()

	s := evaluateCandidate(c, nil, opts)

	// 100*0.4 + 50*0.3 + 50*0.3
	assert.InDelta(t, 70, s.TotalScore, 1e-9)
}
