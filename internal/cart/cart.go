package cart

import (
	"github.com/shopspring/decimal"

	carterrors "ferremas-storefront/internal/cart/errors"
)

// Line is one distinct product held in the cart. Name, price and image are
// captured at add-time and never re-synced from the catalog.
type Line struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Snapshot is the full cart state at an instant. Totals are derived from the
// line list on every read, never stored.
type Snapshot struct {
	Lines      []Line          `json:"lines"`
	TotalItems int64           `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Cart holds the line collection in insertion order. At most one line exists
// per product id; a line never stays at quantity 0 (it is removed instead).
// Cart itself is not safe for concurrent use; Store serializes access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddLine merges into an existing line for the same product id, otherwise
// appends. The price is validated here: the storefront must never hold a
// corrupted price, even if a caller sends one.
func (c *Cart) AddLine(productID int64, name string, unitPrice decimal.Decimal, quantity int64, imageURL string) error {
	if productID <= 0 {
		return carterrors.ErrInvalidProduct
	}
	if quantity <= 0 {
		return carterrors.ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return carterrors.ErrInvalidPrice
	}

	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		ImageURL:  imageURL,
	})
	return nil
}

// RemoveLine deletes the line if present. Unknown ids are a no-op.
func (c *Cart) RemoveLine(productID int64) {
	if i := c.indexOf(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sets the absolute quantity, clamped at 0. A line at 0 is
// removed from the collection. Unknown ids are a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int64) {
	if quantity <= 0 {
		c.RemoveLine(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// Increment bumps an existing line's quantity by one.
func (c *Cart) Increment(productID int64) error {
	i := c.indexOf(productID)
	if i < 0 {
		return carterrors.ErrLineNotFound
	}
	c.lines[i].Quantity++
	return nil
}

// Decrement lowers an existing line's quantity by one, removing the line when
// it reaches 0.
func (c *Cart) Decrement(productID int64) error {
	i := c.indexOf(productID)
	if i < 0 {
		return carterrors.ErrLineNotFound
	}
	c.lines[i].Quantity--
	if c.lines[i].Quantity <= 0 {
		c.RemoveLine(productID)
	}
	return nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Snapshot recomputes both totals from the current lines.
func (c *Cart) Snapshot() Snapshot {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)

	var items int64
	total := decimal.Zero
	for _, l := range lines {
		items += l.Quantity
		total = total.Add(l.Subtotal())
	}

	return Snapshot{
		Lines:      lines,
		TotalItems: items,
		TotalPrice: total,
	}
}
