package domain

import "fmt"

const (
	// LowStockThreshold is the exclusive upper bound for the low-stock list.
	LowStockThreshold = 10
	LowStockLimit     = 5
	RecentUpdateLimit = 10
)

type TimelinePoint struct {
	Date        Date  `db:"date" json:"date"`
	TotalAssets int64 `db:"total_assets" json:"totalAssets"`
}

type LowStockItem struct {
	ID           int64  `db:"id" json:"id"`
	ResourceName string `db:"resource_name" json:"resourceName"`
	AssetName    string `db:"asset_name" json:"assetName"`
	StockCount   int64  `db:"stock_count" json:"stockCount"`
	LastUpdated  Date   `db:"last_updated" json:"lastUpdated"`
	Section      string `db:"section" json:"section"`
}

// AssetChange is an asset row joined with its resource name.
type AssetChange struct {
	ID           int64  `db:"id"`
	AssetName    string `db:"asset_name"`
	Deduction    int64  `db:"deduction"`
	Date         Date   `db:"date"`
	ResourceName string `db:"resource_name"`
}

type RecentUpdate struct {
	ID       int64  `json:"id"`
	Item     string `json:"item"`
	Action   string `json:"action"`
	Quantity int64  `json:"quantity"`
	Date     Date   `json:"date"`
}

func (c AssetChange) RecentUpdate() RecentUpdate {
	return RecentUpdate{
		ID:       c.ID,
		Item:     fmt.Sprintf("%s (%s)", c.ResourceName, c.AssetName),
		Action:   ActionFor(c.Deduction),
		Quantity: Quantity(c.Deduction),
		Date:     c.Date,
	}
}
