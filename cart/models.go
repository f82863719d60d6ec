// Package cart, as part of the shopping cart module.
// This file, `models.go`, defines the line item entity.
package cart

import "github.com/syedOmegaPrime/SolitudeFinalProject/catalog"

// Item is one cart line: an asset snapshot paired with a quantity.
//
// The asset is embedded by value, not referenced by id. Price or name
// changes to the catalog after add-to-cart therefore do NOT propagate to
// lines already in the cart. That staleness is an accepted tradeoff carried
// over deliberately; do not "fix" it by re-normalizing to a reference.
type Item struct {
	Asset    catalog.Asset `json:"asset"`
	Quantity int           `json:"quantity"` // always >= 1 for a stored line
}
