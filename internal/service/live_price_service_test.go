package service

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(seed int64) *LivePriceService {
	return NewLivePriceServiceWithSource(rand.New(rand.NewSource(seed)))
}

func TestInitialQuotes(t *testing.T) {
	s := newTestFeed(1)

	quotes := s.Quotes()
	assert.True(t, quotes[SymbolGold24K].Equal(decimal.RequireFromString("12426.00")))
	assert.True(t, quotes[SymbolGold22K].Equal(decimal.RequireFromString("11390.91")))
	assert.True(t, quotes[SymbolGold18K].Equal(decimal.RequireFromString("9319.50")))
}

func TestRefresh_BaseStaysWithinBounds(t *testing.T) {
	s := newTestFeed(42)

	for i := 0; i < 5000; i++ {
		s.Refresh()
		base := s.PriceOf(SymbolGold24K)
		require.True(t, base.GreaterThanOrEqual(lowerBound),
			"tick %d: base %s below lower bound", i, base)
		require.True(t, base.LessThanOrEqual(upperBound),
			"tick %d: base %s above upper bound", i, base)
	}
}

func TestRefresh_DerivedQuotesTrackBase(t *testing.T) {
	s := newTestFeed(7)

	for i := 0; i < 200; i++ {
		s.Refresh()
		quotes := s.Quotes()
		base := quotes[SymbolGold24K]

		want22 := base.Mul(ratio22K).Round(2)
		want18 := base.Mul(ratio18K).Round(2)
		require.True(t, quotes[SymbolGold22K].Equal(want22),
			"tick %d: 22K %s, want %s", i, quotes[SymbolGold22K], want22)
		require.True(t, quotes[SymbolGold18K].Equal(want18),
			"tick %d: 18K %s, want %s", i, quotes[SymbolGold18K], want18)
	}
}

func TestRefresh_MoveIsAtMostTenBasisPoints(t *testing.T) {
	s := newTestFeed(99)

	for i := 0; i < 500; i++ {
		before := s.PriceOf(SymbolGold24K)
		s.Refresh()
		after := s.PriceOf(SymbolGold24K)

		// A reset to the interior value is allowed to jump further
		if after.Equal(resetHigh) || after.Equal(resetLow) {
			continue
		}

		move := after.Sub(before).Abs()
		// 0.1% of the old price, plus half a cent of rounding slack
		limit := before.Mul(decimal.RequireFromString("0.001")).Add(decimal.RequireFromString("0.005"))
		require.True(t, move.LessThanOrEqual(limit),
			"tick %d: moved %s from %s, limit %s", i, move, before, limit)
	}
}

func TestQuotes_GoldAliases24K(t *testing.T) {
	s := newTestFeed(3)
	s.Refresh()

	quotes := s.Quotes()
	assert.True(t, quotes[SymbolGold].Equal(quotes[SymbolGold24K]))
	assert.Len(t, quotes, 4)
}

func TestPriceOf_CaseInsensitive(t *testing.T) {
	s := newTestFeed(3)

	assert.True(t, s.PriceOf("gold").Equal(s.PriceOf(SymbolGold)))
	assert.True(t, s.PriceOf("gold_22k").Equal(s.PriceOf(SymbolGold22K)))
}

// An unrecognized symbol quietly prices at zero instead of failing. That is
// the documented contract: trades against such symbols settle at zero cost.
func TestPriceOf_UnknownSymbolYieldsZero(t *testing.T) {
	s := newTestFeed(3)

	assert.True(t, s.PriceOf("SILVER").IsZero())
	assert.True(t, s.PriceOf("").IsZero())
}
