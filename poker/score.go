package poker

import "sort"

// Score bands. Each category occupies its own integer range so the
// category dominates the tiebreak rank within it.
const (
	pairBase        = 20
	twoPairBase     = 40
	threeOfKindBase = 60
	straightBase    = 80
	flushScore      = 100
	fullHouseBase   = 120
	fourOfKindBase  = 140
)

// Score maps a 2-card private hand plus up to 5 community cards to a
// single comparable integer. Higher wins; scores are only meaningful
// between players evaluated against the same community cards.
//
// Categories are checked in a fixed order and a later match overwrites
// an earlier one unconditionally, so the last matching rule wins rather
// than the highest category. That ordering is part of the scoring
// contract and must not be replaced with a max-of-all-categories
// evaluation. Straight flushes and royal flushes are never detected,
// and a flush scores a flat 100 with no high-card tiebreak.
//
// Only ranks and suits present in the private hand qualify a category;
// a combination formed entirely by community cards does not count.
func Score(hand []Card, community []Card) int {
	handRanks := make([]int, 0, len(hand))
	for _, c := range hand {
		handRanks = append(handRanks, c.Rank)
	}
	sort.Ints(handRanks)

	// High card (2-14)
	score := handRanks[len(handRanks)-1]

	pool := make([]Card, 0, len(hand)+len(community))
	pool = append(pool, hand...)
	pool = append(pool, community...)

	// Pair, two pair, three of a kind, full house, four of a kind.
	// Ranks are visited in ascending order; duplicates formed entirely
	// by community cards are disregarded.
	rankCounts := map[int]int{}
	for _, c := range pool {
		rankCounts[c.Rank]++
	}
	countedRanks := make([]int, 0, len(rankCounts))
	for rank := range rankCounts {
		countedRanks = append(countedRanks, rank)
	}
	sort.Ints(countedRanks)

	pairs, threes := 0, 0
	for _, rank := range countedRanks {
		if !containsRank(handRanks, rank) {
			continue
		}
		switch rankCounts[rank] {
		case 2:
			if pairs == 0 {
				score = pairBase + rank
			} else {
				score = twoPairBase + rank
			}
			pairs++
		case 3:
			if pairs == 0 && threes == 0 {
				score = threeOfKindBase + rank
			} else {
				score = fullHouseBase + rank
			}
			threes++
		case 4:
			score = fourOfKindBase + rank
		}
	}

	// Straight: any window of 5 adjacent ranks (duplicates included)
	// with no gap larger than 1, as long as the private hand
	// participates in the window. The last qualifying window wins.
	allRanks := make([]int, 0, len(pool))
	for _, c := range pool {
		allRanks = append(allRanks, c.Rank)
	}
	sort.Ints(allRanks)
	for base := 0; base+4 < len(allRanks); base++ {
		straight := true
		inHand := containsRank(handRanks, allRanks[base])
		for i := 1; i < 5; i++ {
			inHand = inHand || containsRank(handRanks, allRanks[base+i])
			if allRanks[base+i]-allRanks[base+i-1] > 1 {
				straight = false
			}
		}
		if straight && inHand {
			score = straightBase + allRanks[base+4]
		}
	}

	// Flush: a private-hand suit reaching 5 in the pool. Flat score.
	suitCounts := map[Suit]int{}
	for _, c := range pool {
		suitCounts[c.Suit]++
	}
	for _, c := range hand {
		if suitCounts[c.Suit] >= 5 {
			score = flushScore
		}
	}

	return score
}

func containsRank(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}
