// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"context"

	"github.com/old-aged-footballers/team-balancer/pkg/models"
)

// StubPlayerSource serves a fixed roster snapshot for tests.
type StubPlayerSource struct {
	Players []models.Player
	Err     error
}

func (s StubPlayerSource) ListPlayers(_ context.Context) ([]models.Player, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Players, nil
}

// StubGameSource serves a fixed game history for tests.
type StubGameSource struct {
	Games []models.Game
	Err   error
}

func (s StubGameSource) ListGames(_ context.Context) ([]models.Game, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}
