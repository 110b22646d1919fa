package game

import (
	"fmt"
	"slices"

	"github.com/lox/fourhanded/internal/evaluator"
)

// Stake is one seat's involvement in a finished hand.
type Stake struct {
	Seat         int
	Contribution int
	Folded       bool
	Eliminated   bool
	Play         *evaluator.Play // nil for folded seats
}

func (s Stake) contends() bool {
	return !s.Folded && !s.Eliminated && s.Play != nil
}

// PotResult describes one layer of the pot: the chips between the previous
// threshold and Threshold, and the seats that split it.
type PotResult struct {
	Threshold int
	Amount    int
	Winners   []int
}

// Settlement is the outcome of Settle. Payouts is indexed like the stakes.
type Settlement struct {
	Payouts []int
	Pots    []PotResult
}

// Total returns the sum of all payouts
func (s Settlement) Total() int {
	total := 0
	for _, p := range s.Payouts {
		total += p
	}
	return total
}

// Settle distributes every contributed chip. Contributions are cut into
// layers at each distinct contribution amount; a layer is won by the best
// hands among the contending seats that reached its threshold. Chips that
// do not split evenly go one at a time to the tied winners in seat order.
func Settle(stakes []Stake) (Settlement, error) {
	result := Settlement{Payouts: make([]int, len(stakes))}

	remaining := make([]int, len(stakes))
	var thresholds []int
	contributed := 0
	for i, s := range stakes {
		remaining[i] = s.Contribution
		contributed += s.Contribution
		if s.Contribution > 0 {
			thresholds = append(thresholds, s.Contribution)
		}
	}
	slices.Sort(thresholds)
	thresholds = slices.Compact(thresholds)

	prev := 0
	for _, threshold := range thresholds {
		size := threshold - prev
		prev = threshold

		amount := 0
		for i := range remaining {
			take := min(remaining[i], size)
			remaining[i] -= take
			amount += take
		}

		winners, err := layerWinners(stakes, threshold)
		if err != nil {
			return Settlement{}, fmt.Errorf("layer %d: %w", threshold, err)
		}

		share, extra := amount/len(winners), amount%len(winners)
		seats := make([]int, len(winners))
		for n, i := range winners {
			result.Payouts[i] += share
			if n < extra {
				result.Payouts[i]++
			}
			seats[n] = stakes[i].Seat
		}
		result.Pots = append(result.Pots, PotResult{Threshold: threshold, Amount: amount, Winners: seats})
	}

	if total := result.Total(); total != contributed {
		return Settlement{}, fmt.Errorf("paid %d of %d contributed: %w", total, contributed, ErrChipConservation)
	}
	return result, nil
}

// layerWinners returns the stake indexes holding the best hand among those
// that reached threshold, ordered by seat. If no contender reached the
// threshold the layer falls back to every contender.
func layerWinners(stakes []Stake, threshold int) ([]int, error) {
	var eligible []int
	for i, s := range stakes {
		if s.contends() && s.Contribution >= threshold {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		for i, s := range stakes {
			if s.contends() {
				eligible = append(eligible, i)
			}
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleWinner
	}

	best := *stakes[eligible[0]].Play
	for _, i := range eligible[1:] {
		if stakes[i].Play.Beats(best) {
			best = *stakes[i].Play
		}
	}

	var winners []int
	for _, i := range eligible {
		if stakes[i].Play.Ties(best) {
			winners = append(winners, i)
		}
	}
	slices.SortFunc(winners, func(a, b int) int {
		return stakes[a].Seat - stakes[b].Seat
	})
	return winners, nil
}
