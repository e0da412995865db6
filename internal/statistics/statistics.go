// Package statistics aggregates results across simulated blackjack rounds.
package statistics

import (
	"fmt"
	"math"
	"strings"
)

// RoundRecord represents the outcome of a single simulated round from the
// players' side of the table
type RoundRecord struct {
	Net        int // total player cash delta for the round
	Hands      int // settled hands, split hands counted separately
	Wins       int
	Pushes     int
	Losses     int
	Blackjacks int
	Busts      int
	Splits     int
	Seed       int64 // RNG seed of the owning table, for replay
}

// Statistics tracks aggregate simulation results
type Statistics struct {
	Rounds int
	Hands  int
	Net    int

	SumNet  float64 // per-round net, for mean/variance
	SumNet2 float64

	Wins       int
	Pushes     int
	Losses     int
	Blackjacks int
	Busts      int
	Splits     int
}

// Add folds a single round into the aggregate
func (s *Statistics) Add(r RoundRecord) {
	s.Rounds++
	s.Hands += r.Hands
	s.Net += r.Net
	s.SumNet += float64(r.Net)
	s.SumNet2 += float64(r.Net) * float64(r.Net)
	s.Wins += r.Wins
	s.Pushes += r.Pushes
	s.Losses += r.Losses
	s.Blackjacks += r.Blackjacks
	s.Busts += r.Busts
	s.Splits += r.Splits
}

// Merge folds another aggregate into this one; used to combine per-table
// results after a parallel run
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.Net += other.Net
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Wins += other.Wins
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.Splits += other.Splits
}

// Mean returns the mean net chips per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of per-round net chips
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// Validate performs internal consistency checks on the aggregate
func (s *Statistics) Validate() error {
	if s.Wins+s.Pushes+s.Losses != s.Hands {
		return fmt.Errorf("outcome counts %d+%d+%d do not sum to %d hands",
			s.Wins, s.Pushes, s.Losses, s.Hands)
	}
	if s.Rounds < 0 || s.Hands < 0 {
		return fmt.Errorf("negative counts: rounds=%d hands=%d", s.Rounds, s.Hands)
	}
	return nil
}

// Summary renders a human-readable report
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rounds: %d  hands: %d\n", s.Rounds, s.Hands)
	fmt.Fprintf(&b, "net: %+d chips (%.3f ± %.3f per round)\n", s.Net, s.Mean(), s.StdError())
	if s.Hands > 0 {
		fmt.Fprintf(&b, "wins: %d (%.1f%%)  pushes: %d (%.1f%%)  losses: %d (%.1f%%)\n",
			s.Wins, pct(s.Wins, s.Hands),
			s.Pushes, pct(s.Pushes, s.Hands),
			s.Losses, pct(s.Losses, s.Hands))
		fmt.Fprintf(&b, "blackjacks: %d  busts: %d  splits: %d\n", s.Blackjacks, s.Busts, s.Splits)
	}
	return b.String()
}

func pct(n, total int) float64 {
	return 100 * float64(n) / float64(total)
}
