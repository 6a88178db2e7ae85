// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

// Package service orchestrates the rating calculator and the team suggestion
// generator over read-only player/game store snapshots. The stores themselves
// (persistence, HTTP) live outside this module.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/caarlos0/env"
	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"

	"github.com/old-aged-footballers/team-balancer/pkg/balancer"
	"github.com/old-aged-footballers/team-balancer/pkg/config"
	"github.com/old-aged-footballers/team-balancer/pkg/constants"
	"github.com/old-aged-footballers/team-balancer/pkg/envelope"
	"github.com/old-aged-footballers/team-balancer/pkg/metrics"
	"github.com/old-aged-footballers/team-balancer/pkg/models"
	"github.com/old-aged-footballers/team-balancer/pkg/rating"
)

// PlayerSource supplies the current roster snapshot.
type PlayerSource interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
}

// GameSource supplies the recorded game history.
type GameSource interface {
	ListGames(ctx context.Context) ([]models.Game, error)
}

// TeamBalancer wires the stores, the metrics sink and the default balancing
// options into one request-scoped entry point.
type TeamBalancer struct {
	players  PlayerSource
	games    GameSource
	metrics  metrics.BalancingMetrics
	defaults models.BalancingOptions
	balancer *balancer.Balancer
}

func New(players PlayerSource, games GameSource, m metrics.BalancingMetrics, cfg *config.Config) *TeamBalancer {
	var defaults models.BalancingOptions
	b := balancer.New()
	if cfg != nil {
		defaults = cfg.Options()
		if !cfg.ExhaustiveSearch {
			b = b.WithoutExhaustiveSearch()
		}
	}
	return &TeamBalancer{
		players:  players,
		games:    games,
		metrics:  m,
		defaults: defaults,
		balancer: b,
	}
}

// NewFromEnv builds a TeamBalancer configured from the environment.
func NewFromEnv(players PlayerSource, games GameSource, m metrics.BalancingMetrics) (*TeamBalancer, error) {
	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return New(players, games, m, cfg), nil
}

// PlayerRatings fetches fresh snapshots and recomputes every player profile.
func (t *TeamBalancer) PlayerRatings(rootScope *envelope.Scope) ([]models.PlayerRating, error) {
	scope := rootScope.NewChildScope("TeamBalancer.PlayerRatings")
	defer scope.Finish()

	players, games, err := t.snapshot(scope)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ratings := rating.Calculate(scope, players, games)
	if t.metrics != nil {
		t.metrics.AddCalculateRatingsElapsedTimeMs(time.Since(start))
	}
	return ratings, nil
}

// SuggestTeams recomputes ratings from the latest snapshots and generates
// ranked split suggestions for the available players. opts may be nil to use
// the configured defaults. The insufficient-players error propagates to the
// caller unmodified.
func (t *TeamBalancer) SuggestTeams(rootScope *envelope.Scope, availablePlayerIDs []string, opts *models.BalancingOptions) ([]models.TeamSuggestion, error) {
	scope := rootScope.NewChildScope("TeamBalancer.SuggestTeams")
	defer scope.Finish()

	requestOpts := t.defaults.Copy()
	if opts != nil {
		requestOpts = opts.Copy()
	}

	players, games, err := t.snapshot(scope)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ratings := rating.Calculate(scope, players, games)
	if t.metrics != nil {
		t.metrics.AddCalculateRatingsElapsedTimeMs(time.Since(start))
	}

	recentGames := validGames(games)

	start = time.Now()
	suggestions, err := t.balancer.Generate(scope, availablePlayerIDs, ratings, recentGames, requestOpts)
	if t.metrics != nil {
		t.metrics.AddGenerateSuggestionsElapsedTimeMs(time.Since(start))
	}
	if err != nil {
		t.recordRejection(scope, err)
		return nil, err
	}

	if t.metrics != nil {
		t.metrics.AddSuggestionsGenerated(len(suggestions))
	}
	return suggestions, nil
}

// snapshot fetches both stores and deep-copies the result so the engine
// never shares mutable state with the store's backing slices.
func (t *TeamBalancer) snapshot(scope *envelope.Scope) ([]models.Player, []models.Game, error) {
	players, err := t.players.ListPlayers(scope.Ctx)
	if err != nil {
		scope.Log.WithError(err).Error("failed to list players")
		return nil, nil, err
	}
	games, err := t.games.ListGames(scope.Ctx)
	if err != nil {
		scope.Log.WithError(err).Error("failed to list games")
		return nil, nil, err
	}

	scope.Log.WithFields(logrus.Fields{
		"numPlayers": len(players),
		"numGames":   len(games),
	}).Debug("store snapshot fetched")

	return copyPlayers(players), copyGames(games), nil
}

func (t *TeamBalancer) recordRejection(scope *envelope.Scope, err error) {
	if t.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, models.ErrInsufficientPlayers):
		t.metrics.AddRejectedPool(constants.ReasonNotEnoughPlayers)
	default:
		t.metrics.AddRejectedPool(constants.ReasonInvalidOptions)
	}
	scope.Log.WithError(err).Warn("suggestion request rejected")
}

func validGames(games []models.Game) []models.Game {
	valid := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.Status.CountsTowardStats() {
			valid = append(valid, g)
		}
	}
	return valid
}

func copyPlayers(players []models.Player) []models.Player {
	copied, err := copystructure.Copy(players)
	if err != nil {
		logrus.Warn("failed to copy player snapshot:", err)
		return players
	}
	result, _ := copied.([]models.Player)
	return result
}

func copyGames(games []models.Game) []models.Game {
	copied, err := copystructure.Copy(games)
	if err != nil {
		logrus.Warn("failed to copy game snapshot:", err)
		return games
	}
	result, _ := copied.([]models.Game)
	return result
}
