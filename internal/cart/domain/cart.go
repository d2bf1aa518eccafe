package domain

import (
	catalog "github.com/dwikikusuma/qkart-client/internal/catalog/domain"
)

// Line is the backend's authoritative cart entry: a product reference and
// how many of it. A quantity of zero means the line is gone, never a
// zero-quantity entry.
type Line struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// RawCart wraps the backend's cart lines. A nil *RawCart means no cart at
// all (guest session or failed fetch) and is distinct from a cart that was
// fetched and is empty; the UI treats the two differently.
type RawCart struct {
	Lines []Line
}

// DisplayLine is a cart line enriched with the product's display fields,
// ready for rendering. It is a deliberate projection: the product's own
// identifier is dropped after the join so ProductID is the only key that
// leaves this package.
type DisplayLine struct {
	ProductID string
	Name      string
	Category  string
	Cost      float64
	Rating    int
	Image     string
	Qty       int
}

// Reconcile joins raw cart lines against the catalog. Output order follows
// the cart, not the catalog; lines referencing a product the catalog does
// not know are dropped. With duplicate catalog ids the first match wins.
// A nil cart reconciles to an empty sequence.
func Reconcile(raw *RawCart, products []catalog.Product) []DisplayLine {
	if raw == nil {
		return []DisplayLine{}
	}

	out := make([]DisplayLine, 0, len(raw.Lines))
	for _, line := range raw.Lines {
		if line.Qty <= 0 {
			continue
		}
		for _, p := range products {
			if p.ID != line.ProductID {
				continue
			}
			out = append(out, DisplayLine{
				ProductID: line.ProductID,
				Name:      p.Name,
				Category:  p.Category,
				Cost:      p.Cost,
				Rating:    p.Rating,
				Image:     p.Image,
				Qty:       line.Qty,
			})
			break
		}
	}
	return out
}

// TotalValue is the order total: the sum of quantity times unit cost.
func TotalValue(lines []DisplayLine) float64 {
	var total float64
	for _, l := range lines {
		total += float64(l.Qty) * l.Cost
	}
	return total
}

// TotalItems is the sum of quantities across all lines.
func TotalItems(lines []DisplayLine) int {
	var total int
	for _, l := range lines {
		total += l.Qty
	}
	return total
}

// Contains reports whether lines already holds productID.
func Contains(lines []DisplayLine, productID string) bool {
	for _, l := range lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// QtyOf returns the quantity of productID in lines, 0 when absent.
func QtyOf(lines []DisplayLine, productID string) int {
	for _, l := range lines {
		if l.ProductID == productID {
			return l.Qty
		}
	}
	return 0
}
