package usecase

import (
	"context"
	"math"

	"github.com/mcalvora/leadflow/internal/entity"
)

type ComputeStatsUseCase struct {
	Leads   LeadRepositoryInterface
	Clients ClientRepositoryInterface
}

func NewComputeStatsUseCase(
	leads LeadRepositoryInterface,
	clients ClientRepositoryInterface,
) *ComputeStatsUseCase {
	return &ComputeStatsUseCase{
		Leads:   leads,
		Clients: clients,
	}
}

// Execute recomputes everything from the two stores on every call. No cache,
// no staleness window. Reads only.
func (uc *ComputeStatsUseCase) Execute(ctx context.Context) (*entity.Stats, error) {
	counts, err := uc.Leads.CountByStatus(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	totalClients, err := uc.Clients.Count(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	byStatus := make(map[string]int, len(entity.Statuses))
	totalLeads := 0
	for _, s := range entity.Statuses {
		byStatus[s] = counts[s]
		totalLeads += counts[s]
	}

	return &entity.Stats{
		TotalLeads:     totalLeads,
		TotalClients:   totalClients,
		LeadsByStatus:  byStatus,
		ConversionRate: conversionRate(totalLeads, totalClients),
	}, nil
}

func conversionRate(leads, clients int) int {
	if leads+clients == 0 {
		return 0
	}
	return int(math.Round(float64(clients) * 100 / float64(leads+clients)))
}
