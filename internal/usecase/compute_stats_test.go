package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/usecase"
)

func TestComputeStatsEmptyStores(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)

	mockLeads.On("CountByStatus", ctx).Return(map[string]int{}, nil)
	mockClients.On("Count", ctx).Return(0, nil)

	uc := usecase.NewComputeStatsUseCase(mockLeads, mockClients)

	stats, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 0, stats.TotalClients)
	assert.Equal(t, 0, stats.ConversionRate) // no division blow-up

	// Every status key is present even when empty.
	for _, s := range entity.Statuses {
		count, ok := stats.LeadsByStatus[s]
		assert.True(t, ok, "missing key %q", s)
		assert.Equal(t, 0, count)
	}
}

func TestComputeStatsMixedFunnel(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)

	mockLeads.On("CountByStatus", ctx).Return(map[string]int{
		entity.StatusNew:       2,
		entity.StatusQualified: 1,
	}, nil)
	mockClients.On("Count", ctx).Return(1, nil)

	uc := usecase.NewComputeStatsUseCase(mockLeads, mockClients)

	stats, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalLeads)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 2, stats.LeadsByStatus[entity.StatusNew])
	assert.Equal(t, 1, stats.LeadsByStatus[entity.StatusQualified])
	assert.Equal(t, 0, stats.LeadsByStatus[entity.StatusContacted])
	assert.Equal(t, 25, stats.ConversionRate) // 1 of 4 ever in the funnel
}

func TestComputeStatsRateRounds(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)

	mockLeads.On("CountByStatus", ctx).Return(map[string]int{entity.StatusNew: 2}, nil)
	mockClients.On("Count", ctx).Return(1, nil)

	uc := usecase.NewComputeStatsUseCase(mockLeads, mockClients)

	stats, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 33, stats.ConversionRate) // 1/3 → 33, not truncated weirdness
}
