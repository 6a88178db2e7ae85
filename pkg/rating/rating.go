// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

// Package rating converts raw game history into per-player statistical
// profiles: skill rating, scoring rate, win rate, recent form and pairwise
// chemistry. The calculation is pure and deterministic.
package rating

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/old-aged-footballers/team-balancer/pkg/constants"
	"github.com/old-aged-footballers/team-balancer/pkg/envelope"
	"github.com/old-aged-footballers/team-balancer/pkg/mathutil"
	"github.com/old-aged-footballers/team-balancer/pkg/models"

	pie "github.com/elliotchance/pie/v2"
)

// Calculate returns one PlayerRating per input player, preserving input
// order. Draft games are excluded. Games are re-sorted by date descending on
// a private copy, so the recent-form window always covers the latest games
// regardless of the caller's ordering.
//
// A player with zero valid games gets all-zero rates and an empty chemistry
// map; unknown players and empty histories are not errors.
func Calculate(rootScope *envelope.Scope, players []models.Player, games []models.Game) []models.PlayerRating {
	scope := rootScope.NewChildScope("rating.Calculate")
	defer scope.Finish()

	validGames := pie.Filter(games, func(g models.Game) bool { return g.Status.CountsTowardStats() })
	sort.SliceStable(validGames, func(i, j int) bool {
		return validGames[i].Date.After(validGames[j].Date)
	})

	ratings := make([]models.PlayerRating, 0, len(players))
	for _, p := range players {
		ratings = append(ratings, ratePlayer(p, validGames))
	}

	scope.Log.WithFields(logrus.Fields{
		"numPlayers":    len(players),
		"numGames":      len(games),
		"numValidGames": len(validGames),
	}).Debug("player ratings calculated")

	return ratings
}

// ratePlayer walks the valid games most-recent-first and accumulates the
// player's totals in a single pass.
func ratePlayer(p models.Player, validGames []models.Game) models.PlayerRating {
	var (
		totalGoals  float64
		wins        int
		recentGoals float64
		recentGames int
		gamesPlayed int
	)
	chemistry := make(map[string]float64)

	for _, g := range validGames {
		team, opponent, ok := g.SideOf(p.ID)
		if !ok {
			continue
		}

		// goals stay signed, an own goal reduces the per-game average
		goals := float64(team.PlayerGoals[p.ID])
		totalGoals += goals

		won := team.Score > opponent.Score
		if won {
			wins++
		}

		if gamesPlayed < constants.RecentFormWindow {
			recentGoals += goals
			recentGames++
		}
		gamesPlayed++

		for _, teammateID := range team.Players {
			if teammateID == p.ID {
				continue
			}
			if won {
				chemistry[teammateID] += constants.SharedWinChemistry
			} else {
				chemistry[teammateID] += constants.SharedNonWinChemistry
			}
		}
	}

	var goalsPerGame, winRate, recentForm float64
	if gamesPlayed > 0 {
		goalsPerGame = totalGoals / float64(gamesPlayed)
		winRate = float64(wins) / float64(gamesPlayed)
	}
	if recentGames > 0 {
		recentForm = recentGoals / float64(recentGames)
	} else {
		recentForm = goalsPerGame
	}

	skillRating := mathutil.Clamp(
		goalsPerGame*constants.GoalsPerGameWeight+
			winRate*constants.WinRateWeight+
			recentForm*constants.RecentFormWeight,
		constants.SkillRatingMin, constants.SkillRatingMax)

	return models.PlayerRating{
		ID:            p.ID,
		Name:          p.Name,
		SkillRating:   skillRating,
		GoalsPerGame:  goalsPerGame,
		WinRate:       winRate,
		GamesPlayed:   gamesPlayed,
		RecentForm:    recentForm,
		TeamChemistry: chemistry,
	}
}
