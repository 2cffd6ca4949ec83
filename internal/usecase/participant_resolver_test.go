package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/lol-stats-sync/internal/domain/summoner"
	"github.com/riskibarqy/lol-stats-sync/internal/infrastructure/repository/memory"
)

func TestParticipantResolver_EnsureCached_BatchesOnlyMissing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seed := make([]summoner.Summoner, 0, 5)
	for id := int64(1); id <= 5; id++ {
		seed = append(seed, summoner.Summoner{SummonerID: id, Name: fmt.Sprintf("p%d", id), NormalizedName: fmt.Sprintf("p%d", id), Region: "euw"})
	}
	repo := memory.NewSummonerRepository(seed...)

	provider := newFakeRiotProvider()
	ids := make([]int64, 0, 100)
	for id := int64(1); id <= 90; id++ {
		provider.profiles[id] = ExternalSummoner{SummonerID: id, Name: fmt.Sprintf("P %d", id)}
		ids = append(ids, id)
	}
	ids = append(ids, 7, 8, 9, 0, -3)

	resolver := NewParticipantResolver(repo, provider, ParticipantResolverConfig{MaxBatch: 40, Concurrency: 1}, testLogger(), nil)
	if err := resolver.EnsureCached(ctx, ids, "euw"); err != nil {
		t.Fatalf("ensure cached: %v", err)
	}

	if len(provider.batches) != 3 {
		t.Fatalf("expected 3 batches, got=%d", len(provider.batches))
	}
	total := 0
	for _, batch := range provider.batches {
		if len(batch) > MaxParticipantBatch {
			t.Fatalf("batch too large: got=%d", len(batch))
		}
		for _, id := range batch {
			if id <= 5 {
				t.Fatalf("cached id %d was fetched again", id)
			}
		}
		total += len(batch)
	}
	if total != 85 {
		t.Fatalf("expected 85 fetched ids, got=%d", total)
	}

	stored, err := repo.ListBySummonerIDs(ctx, "euw", ids)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 90 {
		t.Fatalf("expected 90 cached summoners, got=%d", len(stored))
	}

	if err := resolver.EnsureCached(ctx, ids, "euw"); err != nil {
		t.Fatalf("ensure cached again: %v", err)
	}
	if got := provider.callCount("by_ids"); got != 3 {
		t.Fatalf("expected no extra upstream calls, got=%d", got)
	}
}

func TestParticipantResolver_EnsureCached_ClampsBatchSize(t *testing.T) {
	t.Parallel()

	provider := newFakeRiotProvider()
	ids := make([]int64, 0, 41)
	for id := int64(100); id < 141; id++ {
		provider.profiles[id] = ExternalSummoner{SummonerID: id, Name: fmt.Sprintf("x%d", id)}
		ids = append(ids, id)
	}

	resolver := NewParticipantResolver(memory.NewSummonerRepository(), provider, ParticipantResolverConfig{MaxBatch: 500, Concurrency: 4}, testLogger(), nil)
	if err := resolver.EnsureCached(context.Background(), ids, "na"); err != nil {
		t.Fatalf("ensure cached: %v", err)
	}
	if len(provider.batches) != 2 {
		t.Fatalf("expected 2 batches, got=%d", len(provider.batches))
	}
}

func TestParticipantResolver_EnsureCached_IgnoresUnknownProfiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewSummonerRepository()
	provider := newFakeRiotProvider()
	provider.profiles[11] = ExternalSummoner{SummonerID: 11, Name: "Known"}

	resolver := NewParticipantResolver(repo, provider, ParticipantResolverConfig{}, testLogger(), nil)
	if err := resolver.EnsureCached(ctx, []int64{11, 12}, "na"); err != nil {
		t.Fatalf("ensure cached: %v", err)
	}
	stored, err := repo.ListBySummonerIDs(ctx, "na", []int64{11, 12})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 1 || stored[0].SummonerID != 11 {
		t.Fatalf("unexpected cached rows: %+v", stored)
	}
}

func TestParticipantResolver_EnsureCached_ReturnsUpstreamError(t *testing.T) {
	t.Parallel()

	provider := newFakeRiotProvider()
	provider.err = fmt.Errorf("%w: status 500", ErrUpstreamUnavailable)

	resolver := NewParticipantResolver(memory.NewSummonerRepository(), provider, ParticipantResolverConfig{}, testLogger(), nil)
	err := resolver.EnsureCached(context.Background(), []int64{1, 2, 3}, "na")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
