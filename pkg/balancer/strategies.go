// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package balancer

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/old-aged-footballers/team-balancer/pkg/constants"
	"github.com/old-aged-footballers/team-balancer/pkg/models"
)

// Strategy names the candidate-generation heuristics. The set is closed:
// every strategy shares the same signature and produces at most one split per
// team size.
type Strategy string

const (
	StrategyAlternating Strategy = "alternating"
	StrategySkillZigZag Strategy = "skill_zigzag"
	StrategyRandomized  Strategy = "randomized"
	StrategyExhaustive  Strategy = "exhaustive"
)

// candidate is an unscored two-team split.
type candidate struct {
	strategy Strategy
	teamA    []models.PlayerRating
	teamB    []models.PlayerRating
}

type strategyFunc func(sortedPlayers []models.PlayerRating, teamSize int) (candidate, bool)

// strategies returns the generation order. sortedPlayers is expected to be
// sorted by skill rating descending. rnd is the invocation-local randomness
// source for the randomized strategy.
func (b *Balancer) strategies(rnd *rand.Rand) []strategyFunc {
	return []strategyFunc{
		alternatingSelection,
		skillZigZagSelection,
		randomizedSelection(rnd),
		b.exhaustiveSelection,
	}
}

// alternatingSelection is a snake draft: even picks go to team A, odd picks
// to team B, walking the skill ranking top down.
func alternatingSelection(sortedPlayers []models.PlayerRating, teamSize int) (candidate, bool) {
	c := candidate{strategy: StrategyAlternating}
	for i := 0; i < teamSize*2 && i < len(sortedPlayers); i++ {
		if i%2 == 0 {
			c.teamA = append(c.teamA, sortedPlayers[i])
		} else {
			c.teamB = append(c.teamB, sortedPlayers[i])
		}
	}
	return c, len(c.teamA) > 0 && len(c.teamB) > 0
}

// skillZigZagSelection pairs strong with weak: highest remaining to A,
// lowest remaining to B, next highest to B, next lowest to A, until both
// teams are full or the pool runs out.
func skillZigZagSelection(sortedPlayers []models.PlayerRating, teamSize int) (candidate, bool) {
	c := candidate{strategy: StrategySkillZigZag}
	remaining := append([]models.PlayerRating(nil), sortedPlayers...)

	front := func() models.PlayerRating {
		p := remaining[0]
		remaining = remaining[1:]
		return p
	}
	back := func() models.PlayerRating {
		p := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		return p
	}

	for len(c.teamA) < teamSize && len(remaining) > 0 {
		c.teamA = append(c.teamA, front())
		if len(c.teamB) < teamSize && len(remaining) > 0 {
			c.teamB = append(c.teamB, back())
		}
		if len(c.teamB) < teamSize && len(remaining) > 0 {
			c.teamB = append(c.teamB, front())
		}
		if len(c.teamA) < teamSize && len(remaining) > 0 {
			c.teamA = append(c.teamA, back())
		}
	}
	return c, len(c.teamA) > 0 && len(c.teamB) > 0
}

// randomizedSelection shuffles the pool uniformly and takes the first
// teamSize players for A and the next teamSize for B.
func randomizedSelection(rnd *rand.Rand) strategyFunc {
	return func(sortedPlayers []models.PlayerRating, teamSize int) (candidate, bool) {
		if len(sortedPlayers) < teamSize*2 {
			return candidate{}, false
		}
		shuffled := append([]models.PlayerRating(nil), sortedPlayers...)
		rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		return candidate{
			strategy: StrategyRandomized,
			teamA:    shuffled[:teamSize],
			teamB:    shuffled[teamSize : teamSize*2],
		}, true
	}
}

// exhaustiveSelection enumerates every split of the top teamSize*2 players
// and keeps the one with the smallest average-skill gap. Pools above
// ExhaustivePoolLimit are skipped to keep the search bounded.
func (b *Balancer) exhaustiveSelection(sortedPlayers []models.PlayerRating, teamSize int) (candidate, bool) {
	if !b.exhaustive {
		return candidate{}, false
	}
	poolSize := teamSize * 2
	if poolSize > constants.ExhaustivePoolLimit || len(sortedPlayers) < poolSize {
		return candidate{}, false
	}
	pool := sortedPlayers[:poolSize]

	bestGap := math.Inf(1)
	var bestIndexes []int
	for _, indexes := range combin.Combinations(poolSize, teamSize) {
		// fixing player 0 on team A halves the search, the mirrored split
		// scores identically
		if indexes[0] != 0 {
			continue
		}
		gap := math.Abs(averageSkillOfIndexes(pool, indexes, true) - averageSkillOfIndexes(pool, indexes, false))
		if gap < bestGap {
			bestGap = gap
			bestIndexes = indexes
		}
	}
	if bestIndexes == nil {
		return candidate{}, false
	}

	c := candidate{strategy: StrategyExhaustive}
	chosen := make(map[int]struct{}, teamSize)
	for _, i := range bestIndexes {
		chosen[i] = struct{}{}
		c.teamA = append(c.teamA, pool[i])
	}
	for i := range pool {
		if _, ok := chosen[i]; !ok {
			c.teamB = append(c.teamB, pool[i])
		}
	}
	return c, true
}

func averageSkillOfIndexes(pool []models.PlayerRating, indexes []int, inSet bool) float64 {
	chosen := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		chosen[i] = struct{}{}
	}
	var sum float64
	var n int
	for i := range pool {
		_, picked := chosen[i]
		if picked == inSet {
			sum += pool[i].SkillRating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// newDefaultRand is the randomness source used when the caller does not
// inject one. Each Balancer owns its generator, so concurrent instances need
// no synchronization.
func newDefaultRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
