// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package constants

// Skill rating linear model. These weights are design constants of the rating
// formula, not tunables: skill = gpg*15 + winRate*45 + recentForm*20, clamped
// to [0, 100].
const (
	GoalsPerGameWeight = 15.0
	WinRateWeight      = 45.0
	RecentFormWeight   = 20.0

	SkillRatingMin = 0.0
	SkillRatingMax = 100.0
)

// Chemistry accumulation per co-played valid game.
const (
	SharedWinChemistry    = 1.0
	SharedNonWinChemistry = -0.5
)

// History windows. Both count games after sorting by date, most recent first.
const (
	RecentFormWindow = 5
	RotationWindow   = 3
)

// Scoring scale.
const (
	NeutralScore   = 50.0
	ChemistryScale = 10.0
)

// Default balancing options.
const (
	DefaultMinTeamSize       = 4
	DefaultMaxTeamSize       = 8
	DefaultMaxSuggestions    = 5
	DefaultSkillWeight       = 0.4
	DefaultChemistryWeight   = 0.3
	DefaultRotationWeight    = 0.3
	DefaultRecentGamesWeight = 0.7
)

// ExhaustivePoolLimit caps the player pool (team size * 2) for which the
// exhaustive split strategy enumerates all combinations. C(16,8) = 12870
// splits is the worst case.
const ExhaustivePoolLimit = 16

// Reasoning threshold bands. Fixed constants, not derived.
const (
	BalanceExcellentThreshold = 80.0
	BalanceGoodThreshold      = 60.0
	ChemistryStrongThreshold  = 70.0
	ChemistryMixedThreshold   = 50.0
	RotationGoodThreshold     = 70.0
	RotationModerateThreshold = 50.0
)

// Reasoning strings, one band per score dimension.
const (
	ReasonBalanceExcellent = "Excellent skill balance between teams"
	ReasonBalanceGood      = "Good skill balance with minor differences"
	ReasonBalancePoor      = "Teams may be slightly imbalanced - consider manual adjustment"

	ReasonChemistryStrong  = "Strong team chemistry based on historical performance"
	ReasonChemistryMixed   = "Mixed team chemistry - some players work well together"
	ReasonChemistryLimited = "Limited historical chemistry data - teams may need time to gel"

	ReasonRotationGood     = "Good player rotation - different combinations from recent games"
	ReasonRotationModerate = "Moderate player rotation"
	ReasonRotationLow      = "Similar to recent team compositions - consider more rotation"
)

// Rejected pool reason constants.
const (
	ReasonNotEnoughPlayers = "not_enough_players"
	ReasonInvalidOptions   = "invalid_options"
)
