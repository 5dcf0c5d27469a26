package schema

import "strconv"

// Position holds signed quantities per book for a product. All three
// books are always present, pre-initialized to 0.
type Position struct {
	Product   Product
	Positions map[Book]int64
}

// NewPosition returns a Position with all three books pre-initialized to 0.
func NewPosition(product Product) Position {
	return Position{
		Product: product,
		Positions: map[Book]int64{
			TRSY1: 0,
			TRSY2: 0,
			TRSY3: 0,
		},
	}
}

// AggregatePosition sums the quantity across all books.
func (p Position) AggregatePosition() int64 {
	var total int64
	for _, b := range Books {
		total += p.Positions[b]
	}
	return total
}

// Copy returns a deep copy so a caller can hand out a value that won't
// alias the service's internal map.
func (p Position) Copy() Position {
	out := Position{Product: p.Product, Positions: make(map[Book]int64, len(p.Positions))}
	for k, v := range p.Positions {
		out.Positions[k] = v
	}
	return out
}

// PersistFields renders the product and each book's quantity.
func (p Position) PersistFields() []string {
	fields := make([]string, 0, 1+len(Books))
	fields = append(fields, p.Product.Ticker)
	for _, b := range Books {
		fields = append(fields, b.String(), strconv.FormatInt(p.Positions[b], 10))
	}
	return fields
}
