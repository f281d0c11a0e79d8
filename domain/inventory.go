package domain

// Action labels derived from an asset's deduction.
const (
	ActionIncreased = "Increased"
	ActionDecreased = "Decreased"
)

// Asset is a stocked item belonging to one Resource.
//
// Deduction is the signed delta applied at the last update with an inverted
// sign: a negative deduction means stock was added.
type Asset struct {
	ID         int64  `db:"id" json:"id"`
	ResourceID int64  `db:"resource_id" json:"resource_id"`
	Name       string `db:"name" json:"name"`
	StockCount int64  `db:"stock_count" json:"stock_count"`
	Deduction  int64  `db:"deduction" json:"deduction"`
	Date       Date   `db:"date" json:"date"`
}

// DeletedAsset is the archived copy of an Asset taken just before removal.
type DeletedAsset Asset

// Action reports whether the last change increased or decreased stock.
func (a Asset) Action() string {
	return ActionFor(a.Deduction)
}

// ActionFor maps a deduction onto its action label.
func ActionFor(deduction int64) string {
	if deduction < 0 {
		return ActionIncreased
	}
	return ActionDecreased
}

// Quantity is the magnitude of a deduction.
func Quantity(deduction int64) int64 {
	if deduction < 0 {
		return -deduction
	}
	return deduction
}
