package services

import (
	"github.com/shopspring/decimal"

	"banksim/internal/core/domain"
)

// RateResolver answers currency conversion queries over the known rate edges.
// Each edge and its inverse (1/rate) form an undirected graph over currency
// codes; a conversion rate is the product of edge rates along a path.
//
// Resolution takes the first path found by depth-first traversal, so results
// are only well defined when the graph is rate-consistent (all paths between
// two currencies multiply to the same value). The resolver does not validate
// consistency; callers needing path-independence must guarantee it in the
// input edges.
type RateResolver struct {
	adjacency map[string]map[string]decimal.Decimal
}

// NewRateResolver builds the adjacency map from the given edges, adding the
// inverse of every edge.
func NewRateResolver(edges []domain.ExchangeRate) *RateResolver {
	adjacency := make(map[string]map[string]decimal.Decimal)
	addEdge := func(from, to string, rate decimal.Decimal) {
		if adjacency[from] == nil {
			adjacency[from] = make(map[string]decimal.Decimal)
		}
		adjacency[from][to] = rate
	}
	one := decimal.NewFromInt(1)
	for _, edge := range edges {
		if edge.Rate.IsZero() {
			continue
		}
		addEdge(edge.FromCurrencyCode, edge.ToCurrencyCode, edge.Rate)
		addEdge(edge.ToCurrencyCode, edge.FromCurrencyCode, one.Div(edge.Rate))
	}
	return &RateResolver{adjacency: adjacency}
}

// Resolve returns the conversion rate from one currency to another.
// Same-currency conversion short-circuits to 1 without consulting the graph;
// zero is the sentinel for an unknown currency or an unreachable pair.
func (r *RateResolver) Resolve(from, to string) decimal.Decimal {
	if from == to {
		return decimal.NewFromInt(1)
	}
	visited := map[string]bool{from: true}
	return r.search(from, to, visited)
}

// Convert converts an amount between currencies, returning zero when no rate
// is known.
func (r *RateResolver) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	rate := r.Resolve(from, to)
	if rate.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(rate)
}

func (r *RateResolver) search(from, to string, visited map[string]bool) decimal.Decimal {
	for neighbor, rate := range r.adjacency[from] {
		if visited[neighbor] {
			continue
		}
		if neighbor == to {
			return rate
		}
		visited[neighbor] = true
		if onward := r.search(neighbor, to, visited); !onward.IsZero() {
			return rate.Mul(onward)
		}
	}
	return decimal.Zero
}
