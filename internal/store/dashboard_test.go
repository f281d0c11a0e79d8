package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"hospitalinventory/m/domain"
)

func TestCounts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	r1 := seedResource(t, s, "Beds", "Ward 1")
	seedResource(t, s, "Masks", "ER")
	seedAsset(t, s, r1.ID, "Cot", 3, 0, "2024-01-01")

	assets, err := s.CountAssets(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, assets)

	resources, err := s.CountResources(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, resources)
}

func TestAssetTimeline_SumsPerDayAscending(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	r := seedResource(t, s, "Beds", "Ward 1")
	seedAsset(t, s, r.ID, "A", 10, 2, "2024-01-02")
	seedAsset(t, s, r.ID, "B", 5, -3, "2024-01-02")
	seedAsset(t, s, r.ID, "C", 7, 1, "2024-01-01")

	points, err := s.AssetTimeline(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.TimelinePoint{
		{Date: mustDate(t, "2024-01-01"), TotalAssets: 6},
		{Date: mustDate(t, "2024-01-02"), TotalAssets: 16},
	}, points)
}

func TestLowStock_BoundedAndAscending(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	r := seedResource(t, s, "Gloves", "Surgery")
	for i, stock := range []int64{9, 10, 0, 42, 3, 7, 1, 8, 11} {
		seedAsset(t, s, r.ID, fmt.Sprintf("item-%d", i), stock, 0, "2024-01-01")
	}

	items, err := s.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, domain.LowStockLimit)

	var prev int64 = -1
	for _, it := range items {
		require.Less(t, it.StockCount, int64(domain.LowStockThreshold))
		require.GreaterOrEqual(t, it.StockCount, prev)
		require.Equal(t, "Gloves", it.ResourceName)
		require.Equal(t, "Surgery", it.Section)
		prev = it.StockCount
	}
	require.Equal(t, int64(0), items[0].StockCount)
	require.Equal(t, int64(8), items[4].StockCount)
}

func TestLowStock_EmptyIsNotNil(t *testing.T) {
	s, _ := newTestStore(t)

	items, err := s.LowStock(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestRecentChanges_NewestFirstLimited(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	r := seedResource(t, s, "Masks", "ER")
	for day := 1; day <= 12; day++ {
		seedAsset(t, s, r.ID, fmt.Sprintf("mask-%02d", day), 5, int64(day%3-1), fmt.Sprintf("2024-02-%02d", day))
	}
	tieA := seedAsset(t, s, r.ID, "tie-a", 1, 0, "2024-02-12")

	changes, err := s.RecentChanges(ctx)
	require.NoError(t, err)
	require.Len(t, changes, domain.RecentUpdateLimit)

	require.Equal(t, tieA.ID, changes[0].ID)
	require.Equal(t, "mask-12", changes[1].AssetName)
	require.Equal(t, "Masks", changes[0].ResourceName)
	for i := 1; i < len(changes); i++ {
		require.False(t, changes[i].Date.After(changes[i-1].Date.Time))
	}
}
