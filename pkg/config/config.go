// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/old-aged-footballers/team-balancer/pkg/models"
)

type Config struct {
	MinTeamSize      int  `env:"BALANCER_MIN_TEAM_SIZE"     envDefault:"0"    envDocs:"minimum number of players per team (0 means use default from code)"`
	MaxTeamSize      int  `env:"BALANCER_MAX_TEAM_SIZE"     envDefault:"0"    envDocs:"maximum number of players per team (0 means use default from code)"`
	MaxSuggestions   int  `env:"BALANCER_MAX_SUGGESTIONS"   envDefault:"0"    envDocs:"number of team suggestions returned per request (0 means use default from code)"`
	ExhaustiveSearch bool `env:"BALANCER_EXHAUSTIVE_SEARCH" envDefault:"true" envDocs:"enable the exhaustive split search for small player pools"`
}

// Options converts the environment configuration into per-call balancing
// options. Zero fields stay zero and are filled by SetDefaultValues.
func (c Config) Options() models.BalancingOptions {
	return models.BalancingOptions{
		MinTeamSize:    c.MinTeamSize,
		MaxTeamSize:    c.MaxTeamSize,
		MaxSuggestions: c.MaxSuggestions,
	}
}
