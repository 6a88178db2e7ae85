// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package balancer

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/old-aged-footballers/team-balancer/pkg/constants"
	"github.com/old-aged-footballers/team-balancer/pkg/mathutil"
	"github.com/old-aged-footballers/team-balancer/pkg/models"

	pie "github.com/elliotchance/pie/v2"
)

// evaluateCandidate scores one split on the three dimensions and blends them
// into the total using the option weights.
func evaluateCandidate(c candidate, recentGames []models.Game, opts models.BalancingOptions) models.TeamSuggestion {
	balanceScore := balanceScore(c.teamA, c.teamB)
	chemistryScore := (teamChemistryScore(c.teamA) + teamChemistryScore(c.teamB)) / 2
	rotationScore := rotationScore(teamIDs(c.teamA), teamIDs(c.teamB), recentGames)

	totalScore := balanceScore*opts.GetSkillWeight() +
		chemistryScore*opts.GetChemistryWeight() +
		rotationScore*opts.GetRotationWeight()

	return models.TeamSuggestion{
		TeamA:          teamIDs(c.teamA),
		TeamB:          teamIDs(c.teamB),
		BalanceScore:   balanceScore,
		ChemistryScore: chemistryScore,
		RotationScore:  rotationScore,
		TotalScore:     totalScore,
		Reasoning:      buildReasoning(balanceScore, chemistryScore, rotationScore),
	}
}

// balanceScore is the inverse of the average-skill gap between the teams.
func balanceScore(teamA, teamB []models.PlayerRating) float64 {
	gap := math.Abs(averageSkill(teamA) - averageSkill(teamB))
	return mathutil.Max(0, constants.SkillRatingMax-gap)
}

func averageSkill(team []models.PlayerRating) float64 {
	if len(team) == 0 {
		return 0
	}
	return stat.Mean(pie.Map(team, func(p models.PlayerRating) float64 { return p.SkillRating }), nil)
}

// teamChemistryScore averages the mutual chemistry of every teammate pair
// and rescales it around the neutral midpoint. Missing entries count as 0;
// a team of fewer than two players scores neutral.
func teamChemistryScore(team []models.PlayerRating) float64 {
	if len(team) < 2 {
		return constants.NeutralScore
	}

	var totalChemistry float64
	var pairCount int
	for i := 0; i < len(team); i++ {
		for j := i + 1; j < len(team); j++ {
			chemistry1 := team[i].TeamChemistry[team[j].ID]
			chemistry2 := team[j].TeamChemistry[team[i].ID]
			totalChemistry += (chemistry1 + chemistry2) / 2
			pairCount++
		}
	}

	return mathutil.Clamp(
		constants.NeutralScore+(totalChemistry/float64(pairCount))*constants.ChemistryScale,
		0, constants.SkillRatingMax)
}

// rotationScore measures how different the split is from the last
// RotationWindow recent games: 100 means entirely novel compositions, 50 is
// neutral when there is no history. recentGames is sorted by date on a
// private copy so "last" always means most recent.
func rotationScore(teamAIDs, teamBIDs []string, recentGames []models.Game) float64 {
	if len(recentGames) == 0 {
		return constants.NeutralScore
	}

	ordered := append([]models.Game(nil), recentGames...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})
	if len(ordered) > constants.RotationWindow {
		ordered = ordered[len(ordered)-constants.RotationWindow:]
	}

	var totalSimilarity float64
	for _, g := range ordered {
		similarity := pie.Max([]float64{
			teamSimilarity(teamAIDs, g.TeamA.Players),
			teamSimilarity(teamBIDs, g.TeamB.Players),
			teamSimilarity(teamAIDs, g.TeamB.Players),
			teamSimilarity(teamBIDs, g.TeamA.Players),
		})
		totalSimilarity += similarity
	}

	averageSimilarity := totalSimilarity / float64(len(ordered))
	return mathutil.Max(0, constants.SkillRatingMax-averageSimilarity)
}

// teamSimilarity is the overlap percentage between two player-id sets,
// scaled by the larger set.
func teamSimilarity(team1, team2 []string) float64 {
	if len(team1) == 0 || len(team2) == 0 {
		return 0
	}

	members := make(map[string]struct{}, len(team1))
	for _, id := range team1 {
		members[id] = struct{}{}
	}
	var common int
	for _, id := range team2 {
		if _, ok := members[id]; ok {
			common++
		}
	}

	total := mathutil.Max(len(team1), len(team2))
	return float64(common) / float64(total) * 100
}

// buildReasoning emits one fixed-band bullet per score dimension.
func buildReasoning(balanceScore, chemistryScore, rotationScore float64) []string {
	reasoning := make([]string, 0, 3)

	switch {
	case balanceScore >= constants.BalanceExcellentThreshold:
		reasoning = append(reasoning, constants.ReasonBalanceExcellent)
	case balanceScore >= constants.BalanceGoodThreshold:
		reasoning = append(reasoning, constants.ReasonBalanceGood)
	default:
		reasoning = append(reasoning, constants.ReasonBalancePoor)
	}

	switch {
	case chemistryScore >= constants.ChemistryStrongThreshold:
		reasoning = append(reasoning, constants.ReasonChemistryStrong)
	case chemistryScore >= constants.ChemistryMixedThreshold:
		reasoning = append(reasoning, constants.ReasonChemistryMixed)
	default:
		reasoning = append(reasoning, constants.ReasonChemistryLimited)
	}

	switch {
	case rotationScore >= constants.RotationGoodThreshold:
		reasoning = append(reasoning, constants.ReasonRotationGood)
	case rotationScore >= constants.RotationModerateThreshold:
		reasoning = append(reasoning, constants.ReasonRotationModerate)
	default:
		reasoning = append(reasoning, constants.ReasonRotationLow)
	}

	return reasoning
}
