package domain

// ReportFilter selects asset rows of one resource within an inclusive
// date range, optionally narrowed to a single asset name.
type ReportFilter struct {
	ResourceName string
	Start        Date
	End          Date
	AssetName    string
}

type ReportType struct {
	Type string `db:"name" json:"type"`
}

type ReportRow struct {
	Name       string `db:"name" json:"name"`
	StockCount int64  `db:"stock_count" json:"stock_count"`
	Deduction  int64  `db:"deduction" json:"deduction"`
	Date       Date   `db:"date" json:"date"`
	Section    string `db:"section" json:"section"`
}

type AssetSearchRow struct {
	AssetName    string `db:"asset_name" json:"asset_name"`
	ResourceName string `db:"resource_name" json:"resource_name"`
	StockCount   int64  `db:"stock_count" json:"stock_count"`
	Deduction    int64  `db:"deduction" json:"deduction"`
	Date         Date   `db:"date" json:"date"`
	Section      string `db:"section" json:"section"`
}
