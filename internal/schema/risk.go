package schema

import (
	"strconv"

	"github.com/yanun0323/decimal"
)

// PV01 is a per-product (or per-sector) risk figure. For a product, Value
// is the per-unit PV01 constant and Quantity the signed quantity carried;
// for a bucketed sector, Value is the summed PV01 times quantity and
// Quantity is 1.
type PV01 struct {
	Product  Product
	Value    decimal.Decimal
	Quantity int64
}

// BucketedSector names a group of products whose risk is aggregated under
// a single synthetic product ID (the sector name).
type BucketedSector struct {
	Products []Product
	Name     string
}

// AsProduct returns a synthetic Product standing in for the sector, keyed
// by its name.
func (b BucketedSector) AsProduct() Product {
	return Product{ProductID: b.Name, Ticker: b.Name}
}

// PersistFields renders the product, PV01 value, and quantity.
func (p PV01) PersistFields() []string {
	return []string{p.Product.Ticker, p.Value.String(), strconv.FormatInt(p.Quantity, 10)}
}
