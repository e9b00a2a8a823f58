package catalog

import (
	"sort"
	"strings"
)

type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// The storefront only sells clothing; everything else from the demo API is
// dropped.
const (
	CategoryMens   = "men's clothing"
	CategoryWomens = "women's clothing"
)

func isClothing(category string) bool {
	return category == CategoryMens || category == CategoryWomens
}

// Filter narrows a product list the way the shop page does.
type Filter struct {
	Category   string // exact category, empty or "all" matches everything
	Search     string // case-insensitive substring over title + description
	PriceRange string // "under-50", "50-100", "over-100", empty or "all"
	Sort       string // "price-asc", "price-desc", anything else keeps order
}

func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		if !matchesPriceRange(p.Price, f.PriceRange) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

func matchesPriceRange(price float64, rng string) bool {
	switch rng {
	case "under-50":
		return price < 50
	case "50-100":
		return price >= 50 && price <= 100
	case "over-100":
		return price > 100
	default:
		return true
	}
}
