package service

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Published symbols. GOLD and GOLD_24K both alias the base 24K price.
const (
	SymbolGold    = "GOLD"
	SymbolGold24K = "GOLD_24K"
	SymbolGold22K = "GOLD_22K"
	SymbolGold18K = "GOLD_18K"
)

var (
	// Current India gold price per gram for 24K, used as the walk's starting point
	initialBasePrice = decimal.RequireFromString("12426.00")

	// 22K trades at ~91.67% of 24K, 18K at 75%
	ratio22K = decimal.RequireFromString("0.9167")
	ratio18K = decimal.RequireFromString("0.75")

	// Bounds keep the walk realistic; breaching a bound resets the price to an
	// interior value rather than pinning it at the boundary
	upperBound = decimal.NewFromInt(13500)
	lowerBound = decimal.NewFromInt(11500)
	resetHigh  = decimal.RequireFromString("13400.00")
	resetLow   = decimal.RequireFromString("11600.00")
)

// quoteSnapshot is one immutable set of internally-consistent prices
type quoteSnapshot struct {
	gold24K decimal.Decimal
	gold22K decimal.Decimal
	gold18K decimal.Decimal
}

// LivePriceService simulates live gold prices for three purities.
// The 24K base price performs a bounded random walk; 22K and 18K are derived
// from it on every tick, so the three quotes are always consistent.
type LivePriceService struct {
	mu       sync.RWMutex
	snapshot quoteSnapshot
	rand     *rand.Rand
}

// NewLivePriceService creates a price service with a time-seeded random source
func NewLivePriceService() *LivePriceService {
	return NewLivePriceServiceWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewLivePriceServiceWithSource creates a price service with the given random
// source, so tests can drive a deterministic walk
func NewLivePriceServiceWithSource(r *rand.Rand) *LivePriceService {
	s := &LivePriceService{rand: r}
	s.snapshot = deriveSnapshot(initialBasePrice)
	return s
}

// Refresh advances the price walk by one tick. Called by the scheduler every
// 10 seconds and once at startup.
func (s *LivePriceService) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// +/- 0.1% relative move
	changePercent := (s.rand.Float64() - 0.5) * 0.002

	base := s.snapshot.gold24K
	change := base.Mul(decimal.NewFromFloat(changePercent))
	base = base.Add(change).Round(2)

	if base.GreaterThan(upperBound) {
		base = resetHigh
	} else if base.LessThan(lowerBound) {
		base = resetLow
	}

	s.snapshot = deriveSnapshot(base)

	log.Printf("Updated India Gold Prices - 24K: %s/gram, 22K: %s/gram, 18K: %s/gram",
		s.snapshot.gold24K, s.snapshot.gold22K, s.snapshot.gold18K)
}

func deriveSnapshot(base decimal.Decimal) quoteSnapshot {
	return quoteSnapshot{
		gold24K: base,
		gold22K: base.Mul(ratio22K).Round(2),
		gold18K: base.Mul(ratio18K).Round(2),
	}
}

// Quotes returns the latest price for every published symbol
func (s *LivePriceService) Quotes() map[string]decimal.Decimal {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	return map[string]decimal.Decimal{
		SymbolGold:    snap.gold24K,
		SymbolGold24K: snap.gold24K,
		SymbolGold22K: snap.gold22K,
		SymbolGold18K: snap.gold18K,
	}
}

// PriceOf returns the latest price for one symbol, case-insensitively.
// Unknown symbols yield zero by contract, not an error.
func (s *LivePriceService) PriceOf(symbol string) decimal.Decimal {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	switch strings.ToUpper(symbol) {
	case SymbolGold, SymbolGold24K:
		return snap.gold24K
	case SymbolGold22K:
		return snap.gold22K
	case SymbolGold18K:
		return snap.gold18K
	}
	return decimal.Zero
}
