package services_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksim/internal/core/services"
	"banksim/internal/dto"
	"banksim/internal/utils/idgen"
)

func simulationRequest() dto.SimulationRequest {
	return dto.SimulationRequest{
		Users: []dto.UserSeed{
			{FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		},
		ExchangeRates: []dto.ExchangeRateSeed{
			{From: "EUR", To: "RON", Rate: decimal.NewFromInt(5)},
		},
		Commands: []dto.Command{
			{Command: "addAccount", Timestamp: 1, Email: "john@example.com", AccountType: "classic", CurrencyCode: "EUR"},
			{Command: "printUsers", Timestamp: 3},
		},
	}
}

func TestRunSeedsUsersAndRates(t *testing.T) {
	runner := services.NewSimulationService(idgen.New(1), slog.Default())

	responses := runner.Run(context.Background(), simulationRequest())

	require.Len(t, responses, 1)
	assert.Equal(t, "printUsers", responses[0].Command)
	views, ok := responses[0].Output.([]dto.UserView)
	require.True(t, ok)
	require.Len(t, views, 1)
	assert.Equal(t, "john@example.com", views[0].Email)
	require.Len(t, views[0].Accounts, 1)
}

func TestRunIsReproducibleAcrossBatches(t *testing.T) {
	// The generator is reset after every batch, so an identical request must
	// produce identical IBANs and card numbers.
	runner := services.NewSimulationService(idgen.New(7), slog.Default())

	first := runner.Run(context.Background(), simulationRequest())
	second := runner.Run(context.Background(), simulationRequest())

	assert.Equal(t, first, second)
}

func TestRunBatchesAreIsolated(t *testing.T) {
	// State never leaks between batches: the second run starts from the seed
	// users, not from accounts created by the first.
	runner := services.NewSimulationService(idgen.New(1), slog.Default())

	runner.Run(context.Background(), simulationRequest())
	responses := runner.Run(context.Background(), simulationRequest())

	views := responses[0].Output.([]dto.UserView)
	assert.Len(t, views[0].Accounts, 1)
}
