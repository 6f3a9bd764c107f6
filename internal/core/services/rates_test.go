package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"banksim/internal/core/domain"
	"banksim/internal/core/services"
)

func edge(from, to string, rate float64) domain.ExchangeRate {
	return domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.NewFromFloat(rate),
	}
}

func TestResolveDirectEdge(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{edge("EUR", "RON", 5)})

	rate := resolver.Resolve("EUR", "RON")
	assert.True(t, rate.Equal(decimal.NewFromInt(5)), "expected 5, got %s", rate)
}

func TestResolveInverseEdge(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{edge("EUR", "RON", 5)})

	rate := resolver.Resolve("RON", "EUR")
	expected := decimal.NewFromInt(1).Div(decimal.NewFromInt(5))
	assert.True(t, rate.Equal(expected), "expected %s, got %s", expected, rate)
}

func TestResolveSameCurrencyWithoutEdges(t *testing.T) {
	// A -> A resolves to 1 even when A appears in no edge at all.
	resolver := services.NewRateResolver(nil)

	rate := resolver.Resolve("USD", "USD")
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestResolveMultiHopPath(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{
		edge("EUR", "RON", 5),
		edge("RON", "INR", 18),
	})

	rate := resolver.Resolve("EUR", "INR")
	assert.True(t, rate.Equal(decimal.NewFromInt(90)), "expected 90, got %s", rate)
}

func TestResolveMultiHopThroughInverse(t *testing.T) {
	// EUR -> RON declared, USD -> RON declared; EUR -> USD goes through RON's
	// inverse edge.
	resolver := services.NewRateResolver([]domain.ExchangeRate{
		edge("EUR", "RON", 5),
		edge("USD", "RON", 4),
	})

	rate := resolver.Resolve("EUR", "USD")
	expected := decimal.NewFromInt(5).Div(decimal.NewFromInt(4))
	assert.True(t, rate.Equal(expected), "expected %s, got %s", expected, rate)
}

func TestResolveNoPath(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{
		edge("EUR", "RON", 5),
		edge("USD", "INR", 83),
	})

	assert.True(t, resolver.Resolve("EUR", "INR").IsZero())
}

func TestResolveUnknownCurrency(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{edge("EUR", "RON", 5)})

	assert.True(t, resolver.Resolve("GBP", "RON").IsZero())
	assert.True(t, resolver.Resolve("EUR", "GBP").IsZero())
}

func TestConvert(t *testing.T) {
	resolver := services.NewRateResolver([]domain.ExchangeRate{edge("EUR", "RON", 5)})

	converted := resolver.Convert(decimal.NewFromInt(10), "EUR", "RON")
	assert.True(t, converted.Equal(decimal.NewFromInt(50)), "expected 50, got %s", converted)

	// Same currency needs no graph.
	same := resolver.Convert(decimal.NewFromInt(10), "GBP", "GBP")
	assert.True(t, same.Equal(decimal.NewFromInt(10)))

	// No rate yields the zero sentinel.
	assert.True(t, resolver.Convert(decimal.NewFromInt(10), "EUR", "GBP").IsZero())
}
