package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"banksim/internal/core/domain"
	"banksim/internal/core/ports"
	"banksim/internal/dto"
)

// SimulationService runs command batches. Every batch gets a fresh entity
// store, rate graph and journal; only the identifier generator is shared
// across batches, and it is reset by the ledger after each one.
type SimulationService struct {
	idgen  ports.IdentifierGenerator
	logger *slog.Logger
}

// NewSimulationService creates a batch runner using the given generator.
func NewSimulationService(idgen ports.IdentifierGenerator, logger *slog.Logger) *SimulationService {
	return &SimulationService{idgen: idgen, logger: logger}
}

var _ ports.SimulationRunner = (*SimulationService)(nil)

// Run seeds the ledger with the request's users and exchange rates, applies
// the commands in order, and returns the responses.
func (s *SimulationService) Run(ctx context.Context, req dto.SimulationRequest) []dto.Response {
	runLogger := s.logger.With(slog.String("run_id", uuid.NewString()))

	store := NewEntityStore()
	for _, seed := range req.Users {
		if err := store.AddUser(domain.NewUser(seed.FirstName, seed.LastName, seed.Email)); err != nil {
			runLogger.WarnContext(ctx, "Skipping user seed", slog.String("email", seed.Email), slog.String("error", err.Error()))
		}
	}

	edges := make([]domain.ExchangeRate, 0, len(req.ExchangeRates))
	for _, seed := range req.ExchangeRates {
		edges = append(edges, domain.ExchangeRate{
			FromCurrencyCode: seed.From,
			ToCurrencyCode:   seed.To,
			Rate:             seed.Rate,
		})
	}

	journal := NewJournal(store)
	reports := NewReportService(store, journal)
	ledger := NewLedgerService(store, NewRateResolver(edges), journal, reports, s.idgen)

	responses := ledger.ProcessBatch(req.Commands)

	runLogger.InfoContext(ctx, "Batch processed",
		slog.Int("users", len(req.Users)),
		slog.Int("commands", len(req.Commands)),
		slog.Int("responses", len(responses)),
	)
	return responses
}
