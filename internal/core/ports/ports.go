package ports

import (
	"context"

	"banksim/internal/dto"
)

// IdentifierGenerator mints the random identifiers the ledger hands out.
// Implementations must guarantee collision-free output across a run and be
// resettable to their seed so identical batches reproduce identical IDs.
// The batch driver calls Reset after every batch; the ledger never does.
type IdentifierGenerator interface {
	GenerateIBAN() string
	GenerateCardNumber() string
	Reset()
}

// SimulationRunner executes one command batch against a fresh ledger.
type SimulationRunner interface {
	Run(ctx context.Context, req dto.SimulationRequest) []dto.Response
}
