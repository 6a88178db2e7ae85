// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

// Package balancer generates ranked two-team split suggestions from player
// ratings. Candidates come from a closed set of named strategies and are
// scored on skill balance, chemistry and rotation.
package balancer

import (
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/typ.v4/slices"

	"github.com/old-aged-footballers/team-balancer/pkg/envelope"
	"github.com/old-aged-footballers/team-balancer/pkg/mathutil"
	"github.com/old-aged-footballers/team-balancer/pkg/models"

	pie "github.com/elliotchance/pie/v2"
)

// pool reusable object to reduce garbage collection
var pool = models.NewPool()

// Balancer generates team suggestions. Instances hold no mutable state
// between calls; every Generate invocation gets its own randomness source.
type Balancer struct {
	exhaustive bool
	newRand    func() *rand.Rand
}

// New returns a Balancer with a time-seeded randomness source and the
// exhaustive small-pool search enabled.
func New() *Balancer {
	return &Balancer{
		exhaustive: true,
		newRand: func() *rand.Rand {
			return newDefaultRand(time.Now().UnixNano())
		},
	}
}

// NewWithSeed returns a Balancer whose randomized strategy is deterministic.
// Intended for tests.
func NewWithSeed(seed int64) *Balancer {
	return &Balancer{
		exhaustive: true,
		newRand: func() *rand.Rand {
			return newDefaultRand(seed)
		},
	}
}

// WithoutExhaustiveSearch disables the exhaustive split strategy.
func (b *Balancer) WithoutExhaustiveSearch() *Balancer {
	b.exhaustive = false
	return b
}

// Generate produces up to opts.MaxSuggestions suggestions, best first, for
// the available players. ratings not in availablePlayerIDs are ignored.
// recentGames feeds the rotation score; it is sorted by date internally so
// the most recent compositions are compared, regardless of caller ordering.
//
// It returns *models.InsufficientPlayersError when the available pool cannot
// fill two minimum-sized teams. Sparse data (missing chemistry entries, no
// recent games) degrades to neutral scores instead of failing.
func (b *Balancer) Generate(
	rootScope *envelope.Scope,
	availablePlayerIDs []string,
	ratings []models.PlayerRating,
	recentGames []models.Game,
	opts models.BalancingOptions,
) ([]models.TeamSuggestion, error) {
	scope := rootScope.NewChildScope("balancer.Generate")
	defer scope.Finish()

	opts.SetDefaultValues()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	available := pie.Filter(ratings, func(r models.PlayerRating) bool {
		return slices.Contains(availablePlayerIDs, r.ID)
	})
	scope.SetAttributes(envelope.PoolSizeTag, len(available))

	required := opts.MinTeamSize * 2
	if len(available) < required {
		return nil, &models.InsufficientPlayersError{Required: required, Actual: len(available)}
	}

	// skill-descending order is the shared input of every strategy
	sorted := append([]models.PlayerRating(nil), available...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SkillRating > sorted[j].SkillRating
	})

	rnd := b.newRand()
	maxTeamSize := mathutil.Min(opts.MaxTeamSize, len(available)/2)

	var candidates []candidate
	for teamSize := opts.MinTeamSize; teamSize <= maxTeamSize; teamSize++ {
		perSize := 0
		for _, strategy := range b.strategies(rnd) {
			if perSize >= opts.MaxSuggestions {
				break
			}
			c, ok := strategy(sorted, teamSize)
			if !ok || isDuplicateCandidate(c, candidates) {
				continue
			}
			candidates = append(candidates, c)
			perSize++
		}
	}

	suggestions := pie.Map(candidates, func(c candidate) models.TeamSuggestion {
		return evaluateCandidate(c, recentGames, opts)
	})
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalScore > suggestions[j].TotalScore
	})
	if len(suggestions) > opts.MaxSuggestions {
		suggestions = suggestions[:opts.MaxSuggestions]
	}

	scope.SetAttributes(envelope.SuggestionCountTag, len(suggestions))
	if len(suggestions) > 0 {
		best := suggestions[0]
		scope.SetAttributes(envelope.TeamMembersTag, append(append([]string(nil), best.TeamA...), best.TeamB...))
	}
	scope.Log.WithFields(logrus.Fields{
		"numAvailable":   len(available),
		"numCandidates":  len(candidates),
		"numSuggestions": len(suggestions),
	}).Debug("team suggestions generated")

	return suggestions, nil
}

// isDuplicateCandidate reports whether the unordered team pair already
// exists among the generated candidates, comparing sorted id lists both
// as-is and with sides swapped.
func isDuplicateCandidate(c candidate, existing []candidate) bool {
	keyA := teamKey(c.teamA)
	keyB := teamKey(c.teamB)
	for _, e := range existing {
		eKeyA := teamKey(e.teamA)
		eKeyB := teamKey(e.teamB)
		if (keyA == eKeyA && keyB == eKeyB) || (keyA == eKeyB && keyB == eKeyA) {
			return true
		}
	}
	return false
}

// teamKey builds an order-insensitive identity for a team.
func teamKey(team []models.PlayerRating) string {
	ids := pool.PlayerIDs.Get()
	defer func() {
		pool.PlayerIDs.Put(ids[:0])
	}()

	for _, p := range team {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)

	var key string
	for _, id := range ids {
		key += id + ","
	}
	return key
}

func teamIDs(team []models.PlayerRating) []string {
	return pie.Map(team, func(p models.PlayerRating) string { return p.ID })
}
