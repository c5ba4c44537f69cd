package catalog

import (
	"strings"

	"vitrina.org/internal/store"
)

// lowStockThreshold marks products that need restocking attention.
const lowStockThreshold = 30

// Overview aggregates the headline numbers shown on the dashboard.
type Overview struct {
	TotalProducts int     `json:"totalProducts"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalSales    int     `json:"totalSales"`
	LowStock      int     `json:"lowStock"`
	AvgRating     float64 `json:"avgRating"`
}

// Summarize computes the overview for a product snapshot. Revenue counts
// recorded sales at the current price. Ratings use the catalog defaults for
// products that never collected one.
func Summarize(products []store.Product) Overview {
	var o Overview
	o.TotalProducts = len(products)
	if len(products) == 0 {
		return o
	}
	var ratingSum float64
	for _, p := range products {
		o.TotalRevenue += p.Price * float64(p.Sales)
		o.TotalSales += p.Sales
		if p.Stock < lowStockThreshold {
			o.LowStock++
		}
		ratingSum += p.EffectiveRating()
	}
	o.AvgRating = ratingSum / float64(len(products))
	return o
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Categories counts products per category, in first-encounter order.
func Categories(products []store.Product) []CategoryCount {
	index := map[string]int{}
	var rows []CategoryCount
	for _, p := range products {
		if i, ok := index[p.Category]; ok {
			rows[i].Count++
			continue
		}
		index[p.Category] = len(rows)
		rows = append(rows, CategoryCount{Name: p.Category, Count: 1})
	}
	return rows
}

// SalesPoint is one bar of the per-product sales chart.
type SalesPoint struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// SalesSeries returns recorded sales for the first ten products. Long names
// are truncated to keep chart labels readable.
func SalesSeries(products []store.Product) []SalesPoint {
	var points []SalesPoint
	for _, p := range products {
		if len(points) == 10 {
			break
		}
		name := p.Name
		if len(name) > 12 {
			name = name[:12]
		}
		points = append(points, SalesPoint{
			Name:    name,
			Sales:   p.Sales,
			Revenue: p.Price * float64(p.Sales),
		})
	}
	return points
}

// Filter narrows a snapshot to products matching the search query and
// category. The query matches name or category case-insensitively; an empty
// query or the "All" category matches everything.
func Filter(products []store.Product, query, category string) []store.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []store.Product
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
