// This file carries the marketplace browse helpers: filtering and sorting
// over the live asset list. The store exposes these for front-ends that
// would otherwise each reimplement the same matching rules.
package catalog

import (
	"sort"
	"strings"
	"time"
)

// Sort orders accepted by Filter.
const (
	SortRelevance = "relevance" // insertion order, newest uploads first
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest" // upload date descending
)

// OpenEndedPriceCap is the slider maximum of the browse UI. A MaxPrice at
// this value means "this much and up", not an upper bound.
const OpenEndedPriceCap = 500

// FilterOptions narrows and orders the asset list. Zero values are
// wildcards: an empty search term matches everything, an empty or "All"
// category matches every category, a zero MaxPrice means unbounded.
type FilterOptions struct {
	SearchTerm string
	Category   string
	MinPrice   float64
	MaxPrice   float64
	SortBy     string
}

// Filter returns the assets matching opts, ordered per opts.SortBy.
// The search term matches case-insensitively against name, description and
// tags, mirroring the marketplace page.
func (s *Service) Filter(opts FilterOptions) []Asset {
	assets := s.Assets()

	if term := strings.ToLower(strings.TrimSpace(opts.SearchTerm)); term != "" {
		matched := assets[:0]
		for _, a := range assets {
			if matchesTerm(a, term) {
				matched = append(matched, a)
			}
		}
		assets = matched
	}

	if opts.Category != "" && opts.Category != "All" {
		matched := assets[:0]
		for _, a := range assets {
			if a.Category == opts.Category {
				matched = append(matched, a)
			}
		}
		assets = matched
	}

	// Price range. The cap value is open-ended: "500" on the slider reads
	// as 500-and-up, so only the lower bound applies there.
	matched := assets[:0]
	for _, a := range assets {
		if a.Price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && opts.MaxPrice < OpenEndedPriceCap && a.Price > opts.MaxPrice {
			continue
		}
		matched = append(matched, a)
	}
	assets = matched

	switch opts.SortBy {
	case SortPriceAsc:
		sort.SliceStable(assets, func(i, j int) bool { return assets[i].Price < assets[j].Price })
	case SortPriceDesc:
		sort.SliceStable(assets, func(i, j int) bool { return assets[i].Price > assets[j].Price })
	case SortNewest:
		sort.SliceStable(assets, func(i, j int) bool {
			return uploadTime(assets[i]).After(uploadTime(assets[j]))
		})
	default:
		// Relevance keeps the store's insertion order.
	}
	return assets
}

// uploadTime parses the asset's upload date. An unparseable date reads as
// the zero time, which "newest" ordering pushes to the end.
func uploadTime(a Asset) time.Time {
	t, err := time.Parse(time.RFC3339, a.UploadDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// matchesTerm reports whether the lowercased term occurs in the asset's
// name, description, or any tag.
func matchesTerm(a Asset, term string) bool {
	if strings.Contains(strings.ToLower(a.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
