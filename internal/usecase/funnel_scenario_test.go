package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/usecase"
)

// End-to-end funnel walk against in-memory stores: intake → qualify →
// convert, checking the audit trail and the derived stats at each step.
func TestFunnelScenarioAda(t *testing.T) {
	ctx := context.Background()

	leads := newMemLeadRepo()
	clients := newMemClientRepo()
	activity := newMemActivityRepo()

	createUC := usecase.NewCreateLeadUseCase(leads, activity, nil)
	updateUC := usecase.NewUpdateLeadStatusUseCase(leads, activity)
	convertUC := usecase.NewConvertLeadUseCase(leads, clients, activity, nil)
	statsUC := usecase.NewComputeStatsUseCase(leads, clients)

	// Intake defaults to "new".
	ada, err := createUC.Execute(ctx, usecase.CreateLeadInput{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNew, ada.Status)

	// Qualify her.
	_, err = updateUC.Execute(ctx, ada.ID, entity.StatusQualified)
	require.NoError(t, err)

	// Most recent activity entry documents the transition.
	recent, err := activity.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, entity.ActivityLeadStatusUpdated, recent[0].Type)
	assert.Equal(t, entity.StatusNew, recent[0].Meta["from"])
	assert.Equal(t, entity.StatusQualified, recent[0].Meta["to"])

	// Stats see one qualified lead.
	stats, err := statsUC.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.LeadsByStatus[entity.StatusQualified])
	assert.Equal(t, 1, stats.TotalLeads)
	assert.Equal(t, 0, stats.TotalClients)

	// Convert. Exactly one client traces back to the lead, the lead is gone.
	client, err := convertUC.Execute(ctx, ada.ID, entity.ClientOverrides{})
	require.NoError(t, err)
	assert.Equal(t, ada.ID, client.SourceLeadID)

	remaining, err := leads.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	stats, err = statsUC.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalLeads)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 100, stats.ConversionRate)

	// Full trail, newest first.
	trail, err := activity.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trail, 3)
	assert.Equal(t, entity.ActivityLeadConverted, trail[0].Type)
	assert.Equal(t, entity.ActivityLeadStatusUpdated, trail[1].Type)
	assert.Equal(t, entity.ActivityLeadCreated, trail[2].Type)
}

// A second conversion of the same lead is rejected and nothing changes.
func TestFunnelScenarioDoubleConversion(t *testing.T) {
	ctx := context.Background()

	leads := newMemLeadRepo()
	clients := newMemClientRepo()
	activity := newMemActivityRepo()

	createUC := usecase.NewCreateLeadUseCase(leads, activity, nil)
	convertUC := usecase.NewConvertLeadUseCase(leads, clients, activity, nil)

	ada, err := createUC.Execute(ctx, usecase.CreateLeadInput{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	_, err = convertUC.Execute(ctx, ada.ID, entity.ClientOverrides{})
	require.NoError(t, err)

	_, err = convertUC.Execute(ctx, ada.ID, entity.ClientOverrides{})
	var domainErr *usecase.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeLeadNotFound, domainErr.Code)

	count, err := clients.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
