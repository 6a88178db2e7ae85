// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

// Package models contains the domain types shared by the rating calculator
// and the team suggestion generator.
package models

import (
	"time"

	"github.com/mitchellh/copystructure"
	"github.com/sirupsen/logrus"

	"github.com/old-aged-footballers/team-balancer/pkg/constants"
)

// GameStatus is the lifecycle state of a recorded game.
type GameStatus string

const (
	// GameStatusDraft marks a game that is still being entered and must not
	// count toward any statistic.
	GameStatusDraft GameStatus = "draft"
	// GameStatusRecent marks the latest completed game.
	GameStatusRecent GameStatus = "recent"
	// GameStatusArchived marks a completed game moved to the archive.
	GameStatusArchived GameStatus = "archived"
)

// CountsTowardStats reports whether games with this status contribute to
// player statistics. Draft games never do.
func (s GameStatus) CountsTowardStats() bool {
	return s == GameStatusRecent || s == GameStatusArchived
}

// Player is a read-only roster record supplied by the player store.
// Only ID and Name are consumed by the rating math; the aggregate fields are
// store-side bookkeeping carried along with the snapshot.
type Player struct {
	ID          string    `json:"id"           x-nullable:"false"`
	Name        string    `json:"name"         x-nullable:"false"`
	IsActive    bool      `json:"is_active"`
	JoinedDate  time.Time `json:"joined_date"`
	GamesPlayed int       `json:"games_played"`
	GoalsScored int       `json:"goals_scored"`
}

// TeamInfo is one side of a recorded game.
type TeamInfo struct {
	Players     []string       `json:"players"`
	PlayerGoals map[string]int `json:"player_goals"`
	Score       int            `json:"score"`
}

// HasPlayer reports whether the given player is on this side.
func (t TeamInfo) HasPlayer(playerID string) bool {
	for _, id := range t.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// Game is a read-only match record supplied by the game store.
// A negative PlayerGoals entry records an own goal credited to the opposing
// team's score.
type Game struct {
	ID     string     `json:"id"`
	Date   time.Time  `json:"date"`
	Notes  string     `json:"notes,omitempty"`
	TeamA  TeamInfo   `json:"team_a"`
	TeamB  TeamInfo   `json:"team_b"`
	Status GameStatus `json:"status"`
}

// SideOf returns the player's team and the opposing team.
// ok is false when the player did not take part in this game.
func (g Game) SideOf(playerID string) (team, opponent TeamInfo, ok bool) {
	if g.TeamA.HasPlayer(playerID) {
		return g.TeamA, g.TeamB, true
	}
	if g.TeamB.HasPlayer(playerID) {
		return g.TeamB, g.TeamA, true
	}
	return TeamInfo{}, TeamInfo{}, false
}

// PlayerRating is the per-player statistical profile derived from game
// history. It is recomputed on every call and never persisted.
type PlayerRating struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	SkillRating   float64            `json:"skill_rating"`
	GoalsPerGame  float64            `json:"goals_per_game"`
	WinRate       float64            `json:"win_rate"`
	GamesPlayed   int                `json:"games_played"`
	RecentForm    float64            `json:"recent_form"`
	TeamChemistry map[string]float64 `json:"team_chemistry"`
}

// TeamSuggestion is one candidate two-team split with its scores and
// human-readable rationale. TeamA and TeamB are disjoint subsets of the
// requested available pool.
type TeamSuggestion struct {
	TeamA          []string `json:"team_a"`
	TeamB          []string `json:"team_b"`
	BalanceScore   float64  `json:"balance_score"`
	ChemistryScore float64  `json:"chemistry_score"`
	RotationScore  float64  `json:"rotation_score"`
	TotalScore     float64  `json:"total_score"`
	Reasoning      []string `json:"reasoning"`
}

// BalancingOptions configures one suggestion request. The zero value is
// usable: SetDefaultValues fills every unset field with the design defaults.
// It is passed per call, never shared module state.
type BalancingOptions struct {
	MinTeamSize    int `json:"min_team_size"   valid:"range(0|2147483647)"`
	MaxTeamSize    int `json:"max_team_size"   valid:"range(0|2147483647)"`
	MaxSuggestions int `json:"max_suggestions" valid:"range(0|2147483647)"`

	SkillWeight     *float64 `json:"skill_weight"`
	ChemistryWeight *float64 `json:"chemistry_weight"`
	RotationWeight  *float64 `json:"rotation_weight"`
	// RecentGamesWeight is reserved; scoring does not read it yet.
	RecentGamesWeight *float64 `json:"recent_games_weight"`

	// internal use only
	isDefaultSet bool `json:"-"`
}

func (o *BalancingOptions) SetDefaultValues() {
	if o.isDefaultSet {
		return
	}
	o.isDefaultSet = true
	if o.MinTeamSize == 0 {
		o.MinTeamSize = constants.DefaultMinTeamSize
	}
	if o.MaxTeamSize == 0 {
		o.MaxTeamSize = constants.DefaultMaxTeamSize
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = constants.DefaultMaxSuggestions
	}
}

// Validate rejects option combinations no strategy can satisfy.
func (o BalancingOptions) Validate() error {
	if o.MinTeamSize < 0 || o.MaxTeamSize < 0 || o.MaxSuggestions < 0 {
		return ValidationErrorNegativeSize
	}
	if o.MaxTeamSize != 0 && o.MinTeamSize > o.MaxTeamSize {
		return ValidationErrorTeamSizeRange
	}
	for _, w := range []*float64{o.SkillWeight, o.ChemistryWeight, o.RotationWeight, o.RecentGamesWeight} {
		if w != nil && *w < 0 {
			return ValidationErrorNegativeWeight
		}
	}
	return nil
}

func (o BalancingOptions) GetSkillWeight() float64 {
	if o.SkillWeight == nil {
		return constants.DefaultSkillWeight
	}
	return *o.SkillWeight
}

func (o BalancingOptions) GetChemistryWeight() float64 {
	if o.ChemistryWeight == nil {
		return constants.DefaultChemistryWeight
	}
	return *o.ChemistryWeight
}

func (o BalancingOptions) GetRotationWeight() float64 {
	if o.RotationWeight == nil {
		return constants.DefaultRotationWeight
	}
	return *o.RotationWeight
}

func (o BalancingOptions) GetRecentGamesWeight() float64 {
	if o.RecentGamesWeight == nil {
		return constants.DefaultRecentGamesWeight
	}
	return *o.RecentGamesWeight
}

func (o BalancingOptions) Copy() BalancingOptions {
	copied, err := copystructure.Copy(o)
	if err != nil {
		logrus.Warn("Failed to copy BalancingOptions struct:", err)
		return o
	}
	opts, _ := copied.(BalancingOptions)
	opts.isDefaultSet = o.isDefaultSet
	return opts
}
