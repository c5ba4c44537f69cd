package catalog

import (
	"math"
	"testing"

	"vitrina.org/internal/store"
)

func TestSummarize(t *testing.T) {
	products := []store.Product{
		{ID: "1", Name: "A", Category: "X", Price: 10, Stock: 5, Rating: 4, Sales: 3},
		{ID: "2", Name: "B", Category: "X", Price: 20, Stock: 50, Sales: 1},
	}
	o := Summarize(products)
	if o.TotalProducts != 2 {
		t.Fatalf("totalProducts = %d", o.TotalProducts)
	}
	if o.TotalRevenue != 10*3+20*1 {
		t.Fatalf("totalRevenue = %v", o.TotalRevenue)
	}
	if o.TotalSales != 4 {
		t.Fatalf("totalSales = %d", o.TotalSales)
	}
	if o.LowStock != 1 {
		t.Fatalf("lowStock = %d", o.LowStock)
	}
	// Product 2 carries no rating and counts as the default 4.5.
	want := (4.0 + store.DefaultRating) / 2
	if math.Abs(o.AvgRating-want) > 1e-9 {
		t.Fatalf("avgRating = %v, want %v", o.AvgRating, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	o := Summarize(nil)
	if o != (Overview{}) {
		t.Fatalf("overview = %+v, want zero", o)
	}
}

func TestCategoriesFirstEncounterOrder(t *testing.T) {
	products := []store.Product{
		{Category: "Home"},
		{Category: "Sports"},
		{Category: "Home"},
		{Category: "Clothing"},
	}
	rows := Categories(products)
	want := []CategoryCount{{"Home", 2}, {"Sports", 1}, {"Clothing", 1}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestSalesSeriesTruncatesNames(t *testing.T) {
	products := make([]store.Product, 12)
	for i := range products {
		products[i] = store.Product{Name: "Professional Espresso Machine", Price: 10, Sales: i}
	}
	points := SalesSeries(products)
	if len(points) != 10 {
		t.Fatalf("len = %d, want 10", len(points))
	}
	if points[0].Name != "Professional" {
		t.Fatalf("name = %q", points[0].Name)
	}
	if points[3].Sales != 3 {
		t.Fatalf("sales = %d", points[3].Sales)
	}
	if points[3].Revenue != 30 {
		t.Fatalf("revenue = %v", points[3].Revenue)
	}
}

func TestFilter(t *testing.T) {
	products := []store.Product{
		{Name: "Smart Watch", Category: "Electronics"},
		{Name: "Trail Sneakers", Category: "Footwear"},
		{Name: "Watch Strap", Category: "Accessories"},
	}

	if got := Filter(products, "watch", "All"); len(got) != 2 {
		t.Fatalf("query watch: %d results", len(got))
	}
	if got := Filter(products, "", "Footwear"); len(got) != 1 || got[0].Name != "Trail Sneakers" {
		t.Fatalf("category filter: %v", got)
	}
	if got := Filter(products, "watch", "Accessories"); len(got) != 1 || got[0].Name != "Watch Strap" {
		t.Fatalf("combined filter: %v", got)
	}
	if got := Filter(products, "foot", ""); len(got) != 1 {
		t.Fatalf("category substring match: %v", got)
	}
	if got := Filter(products, "", ""); len(got) != 3 {
		t.Fatalf("no filter: %d results", len(got))
	}
}
