package filter

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/fjod/go_storefront/internal/domain"
)

// Sort selects the ordering applied after filtering.
type Sort string

const (
	SortPopularity Sort = "popularity"
	SortNameAsc    Sort = "name-asc"
	SortNameDesc   Sort = "name-desc"
	SortPriceAsc   Sort = "price-asc"
	SortPriceDesc  Sort = "price-desc"
)

// ParseSort maps a wire value to a Sort, falling back to popularity
// for anything unrecognized.
func ParseSort(s string) Sort {
	switch Sort(s) {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc, SortPopularity:
		return Sort(s)
	default:
		return SortPopularity
	}
}

// Spec describes one filtering/sorting request. It is a plain value with
// no ties to any particular product set; callers rebuild it per interaction.
type Spec struct {
	Category string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Sort     Sort
	Search   string
}

// fallbackCeiling is used as the price ceiling before the catalog has loaded.
const fallbackCeiling = 1000

// DefaultSpec returns the initial spec for a freshly loaded catalog:
// no category, no search, popularity ordering and the price range clamped
// to the observed catalog maximum (rounded up to a whole unit).
func DefaultSpec(products []domain.Product) Spec {
	return Spec{
		PriceMin: decimal.Zero,
		PriceMax: PriceCeiling(products),
		Sort:     SortPopularity,
	}
}

// PriceCeiling returns the catalog's maximum price rounded up to a whole
// unit, or a fixed fallback when the catalog is empty.
func PriceCeiling(products []domain.Product) decimal.Decimal {
	if len(products) == 0 {
		return decimal.NewFromInt(fallbackCeiling)
	}
	max := products[0].Price
	for _, p := range products[1:] {
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return max.Ceil()
}

// Apply filters and sorts products according to spec. It is pure: the
// input slice is left untouched and a fresh slice is returned. Sorting is
// stable, so products with equal keys keep their original relative order.
func Apply(products []domain.Product, spec Spec) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	query := strings.ToLower(spec.Search)
	for _, p := range products {
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if p.Price.LessThan(spec.PriceMin) || p.Price.GreaterThan(spec.PriceMax) {
			continue
		}
		result = append(result, p)
	}

	switch spec.Sort {
	case SortNameAsc:
		col := collate.New(language.English)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[i].Title, result[j].Title) < 0
		})
	case SortNameDesc:
		col := collate.New(language.English)
		sort.SliceStable(result, func(i, j int) bool {
			return col.CompareString(result[j].Title, result[i].Title) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price.LessThan(result[i].Price)
		})
	default: // popularity: most-rated first
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating.Count > result[j].Rating.Count
		})
	}

	return result
}
