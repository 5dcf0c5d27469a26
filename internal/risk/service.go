// Package risk implements RiskService: a listener on Position deltas that
// maintains PV01 per product and answers bucketed-sector risk queries.
package risk

import (
	"github.com/yanun0323/decimal"

	"treasurydesk/internal/bus"
	"treasurydesk/internal/refdata"
	"treasurydesk/internal/schema"
)

// Service maintains PV01 per product. On first observation of a product
// it seeds pv01 from the static reference table with quantity 0; every
// Position delta, the first included, adds AggregatePosition() to the
// stored quantity.
type Service struct {
	store *bus.Store[string, schema.PV01]
}

// New creates a risk service.
func New() *Service {
	return &Service{store: bus.NewStore[string, schema.PV01]()}
}

// AddListener registers a listener for updated PV01 records.
func (s *Service) AddListener(l bus.Listener[schema.PV01]) {
	s.store.AddListener(l)
}

// GetData returns the current PV01 record for a product.
func (s *Service) GetData(productID string) (schema.PV01, bool) {
	return s.store.GetData(productID)
}

// ProcessAdd implements bus.Listener[schema.Position]: installed on
// PositionService so every position delta updates risk.
func (s *Service) ProcessAdd(delta schema.Position) error {
	return s.AddPosition(delta)
}

func (s *Service) ProcessRemove(schema.Position) error { return nil }
func (s *Service) ProcessUpdate(schema.Position) error { return nil }

// AddPosition updates the stored quantity for delta's product by its
// aggregate position, seeding pv01 from the static table on first sight.
func (s *Service) AddPosition(delta schema.Position) error {
	key := delta.Product.ProductID

	current, ok := s.store.GetData(key)
	if !ok {
		value, found := refdata.PV01(delta.Product.Ticker)
		if !found {
			value = ""
		}
		current = schema.PV01{Product: delta.Product, Value: value, Quantity: 0}
	}
	current.Quantity += delta.AggregatePosition()

	return s.store.Put(key, current)
}

// GetBucketedRisk returns a synthetic PV01 for a sector: the value field
// is the sum, over the sector's products, of storedPV01(p)*storedQuantity(p);
// quantity is always 1 (the sector stands as a single risk unit). It
// returns by value; nothing here hands back a pointer into the store.
func (s *Service) GetBucketedRisk(sector schema.BucketedSector) schema.PV01 {
	total := decimal.NewFromInt(0)
	for _, product := range sector.Products {
		pv01, ok := s.store.GetData(product.ProductID)
		if !ok {
			continue
		}
		total = total.Add(pv01.Value.Mul(decimal.NewFromInt(pv01.Quantity)))
	}
	return schema.PV01{Product: sector.AsProduct(), Value: total, Quantity: 1}
}
