package metrics

import (
	"math"

	"github.com/complexityscope/complexityscope/internal/walker"
)

// halsteadBugDivisor and halsteadTimeDivisor are Halstead's own constants
// (Stroud number of 18 mental discriminations per second, 3000 Volume
// units per estimated bug), not tunable knobs.
const (
	halsteadBugDivisor  = 3000.0
	halsteadTimeDivisor = 18.0
)

// HalsteadBag is a per-report multiset of distinct and total identifiers
// for one Halstead metric (operators or operands). Identifiers are kept
// in first-seen order; duplicates only increase Total.
type HalsteadBag struct {
	index       map[string]struct{}
	Identifiers []string
	Distinct    uint32
	Total       uint32
}

// NewHalsteadBag returns an empty bag ready for use.
func NewHalsteadBag() HalsteadBag {
	return HalsteadBag{index: make(map[string]struct{})}
}

// Encounter records one occurrence of identifier, growing Distinct only
// the first time it is seen.
func (b *HalsteadBag) Encounter(identifier string) {
	if b.index == nil {
		b.index = make(map[string]struct{})
	}

	if _, seen := b.index[identifier]; !seen {
		b.index[identifier] = struct{}{}
		b.Identifiers = append(b.Identifiers, identifier)
		b.Distinct++
	}

	b.Total++
}

// HalsteadPair holds the operator and operand bags for one report plus the
// scalars derived from them during finalisation.
type HalsteadPair struct {
	Operators HalsteadBag
	Operands  HalsteadBag

	Length     uint32
	Vocabulary uint32
	Difficulty float64
	Volume     float64
	Effort     float64
	Bugs       float64
	Time       float64
}

// NewHalsteadPair returns a pair with both bags initialised.
func NewHalsteadPair() HalsteadPair {
	return HalsteadPair{
		Operators: NewHalsteadBag(),
		Operands:  NewHalsteadBag(),
	}
}

// Encounter records one occurrence of identifier against the named metric.
func (p *HalsteadPair) Encounter(metric walker.MetricKind, identifier string) {
	switch metric {
	case walker.Operators:
		p.Operators.Encounter(identifier)
	case walker.Operands:
		p.Operands.Encounter(identifier)
	}
}

// Finalize computes length, vocabulary, difficulty, volume, effort, bugs
// and time from the accumulated bags. A zero-length pair
// (no operators or operands seen) leaves every derived scalar at zero.
func (p *HalsteadPair) Finalize() {
	p.Length = p.Operators.Total + p.Operands.Total
	if p.Length == 0 {
		p.Vocabulary, p.Difficulty, p.Volume, p.Effort, p.Bugs, p.Time = 0, 0, 0, 0, 0, 0

		return
	}

	p.Vocabulary = p.Operators.Distinct + p.Operands.Distinct

	operandRepetition := 1.0
	if p.Operands.Distinct != 0 {
		operandRepetition = float64(p.Operands.Total) / float64(p.Operands.Distinct)
	}

	p.Difficulty = (float64(p.Operators.Distinct) / 2.0) * operandRepetition
	p.Volume = float64(p.Length) * math.Log2(float64(p.Vocabulary))
	p.Effort = p.Difficulty * p.Volume
	p.Bugs = p.Volume / halsteadBugDivisor
	p.Time = p.Effort / halsteadTimeDivisor
}
