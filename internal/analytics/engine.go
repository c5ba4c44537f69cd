// Package analytics derives descriptive and predictive views from a product
// snapshot. Every transform is total over any input including the empty
// list and recomputes from scratch on each call.
package analytics

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"vitrina.org/internal/store"
)

// Engine computes the six analytics views. Randomness (elasticity draws,
// confidence values) comes from a single injected source so that tests can
// seed it.
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the random source. Pass a fixed seed for reproducible
// output.
func WithRand(rnd *rand.Rand) Option {
	return func(e *Engine) { e.rnd = rnd }
}

// NewEngine returns an engine seeded from the wall clock unless WithRand
// overrides it.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Float64()
}

// normalize applies the catalog defaults for missing ratings and review
// counts once, so the transforms never re-derive them.
func normalize(products []store.Product) []store.Product {
	out := make([]store.Product, len(products))
	for i, p := range products {
		p.Rating = p.EffectiveRating()
		p.Reviews = p.EffectiveReviews()
		out[i] = p
	}
	return out
}

// Clusters partitions product ids into high/medium/low performance buckets.
type Clusters struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// clusterScore weighs sell-through against rating and price tier.
func clusterScore(p store.Product) float64 {
	stock := p.Stock
	if stock < 1 {
		stock = 1
	}
	return 0.5*(float64(p.Sales)/float64(stock)) + 0.3*p.Rating + 0.2*(p.Price/100)
}

// Clusters assigns every product to exactly one bucket. Scores above 8 are
// high performers, above 4 medium, the rest low.
func (e *Engine) Clusters(products []store.Product) Clusters {
	var c Clusters
	for _, p := range normalize(products) {
		switch score := clusterScore(p); {
		case score > 8:
			c.High = append(c.High, p.ID)
		case score > 4:
			c.Medium = append(c.Medium, p.ID)
		default:
			c.Low = append(c.Low, p.ID)
		}
	}
	return c
}

// ForecastPoint is one row of the sales forecast.
type ForecastPoint struct {
	Name       string  `json:"name"`
	Sales      int     `json:"sales"`
	Forecast   float64 `json:"forecast"`
	Confidence float64 `json:"confidence"`
}

// Forecast projects next-period sales for the first ten products. The
// seasonal term depends on the product's position among all products, not
// just the forecast window.
func (e *Engine) Forecast(products []store.Product) []ForecastPoint {
	all := normalize(products)
	var points []ForecastPoint
	for i, p := range all {
		if len(points) == 10 {
			break
		}
		sales := float64(p.Sales)
		trend := 0.2 * sales / 30
		seasonal := 50 * math.Sin(math.Pi*float64(i)/float64(len(all)))
		forecast := math.Round(1.3*sales + 30*trend + seasonal)
		forecast = math.Max(forecast, 0.8*sales)

		name := p.Name
		if len(name) > 15 {
			name = name[:15]
		}
		points = append(points, ForecastPoint{
			Name:       name,
			Sales:      p.Sales,
			Forecast:   forecast,
			Confidence: 0.85 + e.float64()*0.1,
		})
	}
	return points
}

// ElasticityRow estimates how a price move would shift revenue.
type ElasticityRow struct {
	Name          string  `json:"name"`
	Elasticity    float64 `json:"elasticity"`
	CurrentPrice  float64 `json:"currentPrice"`
	OptimalPrice  float64 `json:"optimalPrice"`
	RevenueImpact float64 `json:"revenueImpact"`
}

// Elasticity draws an elasticity coefficient per product, derives the
// implied optimal price and revenue impact, and returns the eight rows with
// the largest absolute impact.
func (e *Engine) Elasticity(products []store.Product) []ElasticityRow {
	var rows []ElasticityRow
	for _, p := range normalize(products) {
		elasticity := -(0.5 + e.float64()*2.0)
		optimal := p.Price * (1 + elasticity*0.1)
		impact := (optimal - p.Price) / p.Price * float64(p.Sales) * p.Price
		rows = append(rows, ElasticityRow{
			Name:          p.Name,
			Elasticity:    elasticity,
			CurrentPrice:  p.Price,
			OptimalPrice:  optimal,
			RevenueImpact: impact,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].RevenueImpact) > math.Abs(rows[j].RevenueImpact)
	})
	if len(rows) > 8 {
		rows = rows[:8]
	}
	return rows
}

// CLVRow is the projected lifetime value of a product category.
type CLVRow struct {
	Category   string  `json:"category"`
	CLV        float64 `json:"clv"`
	Confidence float64 `json:"confidence"`
}

// CLV sums per-product lifetime value by category, keeping the first six
// categories in encounter order. The value assumes a monthly purchase rate
// of sales/100 over a three year horizon.
func (e *Engine) CLV(products []store.Product) []CLVRow {
	index := map[string]int{}
	var rows []CLVRow
	for _, p := range normalize(products) {
		value := float64(p.Sales) / 100 * p.Price * 12 * 3
		if i, ok := index[p.Category]; ok {
			rows[i].CLV += value
			continue
		}
		if len(rows) == 6 {
			continue
		}
		index[p.Category] = len(rows)
		rows = append(rows, CLVRow{
			Category:   p.Category,
			CLV:        value,
			Confidence: 0.75 + e.float64()*0.2,
		})
	}
	return rows
}

// ChurnRow ranks a product by its risk of going stale.
type ChurnRow struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	Risk  string  `json:"risk"`
}

// Churn scores products by unsold stock and weak ratings, capped at 100,
// and returns the eight riskiest.
func (e *Engine) Churn(products []store.Product) []ChurnRow {
	var rows []ChurnRow
	for _, p := range normalize(products) {
		stockRatio := float64(p.Stock) / float64(p.Sales+1)
		ratingFactor := (5 - p.Rating) * 20
		score := math.Min(100, stockRatio*30+ratingFactor)

		risk := "Low Risk"
		switch {
		case score > 60:
			risk = "High Priority"
		case score > 30:
			risk = "Monitor"
		}
		rows = append(rows, ChurnRow{Name: p.Name, Score: score, Risk: risk})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	if len(rows) > 8 {
		rows = rows[:8]
	}
	return rows
}

// SentimentRow summarizes review sentiment for one product.
type SentimentRow struct {
	Name      string  `json:"name"`
	Sentiment float64 `json:"sentiment"`
	Volume    int     `json:"volume"`
	Trend     string  `json:"trend"`
}

// Sentiment maps ratings onto a -100..100 scale for the first ten products
// in input order.
func (e *Engine) Sentiment(products []store.Product) []SentimentRow {
	var rows []SentimentRow
	for _, p := range normalize(products) {
		if len(rows) == 10 {
			break
		}
		s := (p.Rating - 2.5) / 2.5
		trend := "Negative"
		switch {
		case s > 0.5:
			trend = "Positive"
		case s > 0:
			trend = "Neutral"
		}
		volume := p.Reviews
		if volume > 100 {
			volume = 100
		}
		rows = append(rows, SentimentRow{
			Name:      p.Name,
			Sentiment: s * 100,
			Volume:    volume,
			Trend:     trend,
		})
	}
	return rows
}

// Report bundles all six views for a single snapshot.
type Report struct {
	Clusters   Clusters        `json:"clusters"`
	Forecast   []ForecastPoint `json:"forecast"`
	Elasticity []ElasticityRow `json:"elasticity"`
	CLV        []CLVRow        `json:"clv"`
	Churn      []ChurnRow      `json:"churn"`
	Sentiment  []SentimentRow  `json:"sentiment"`
}

// Report runs every transform over the same snapshot.
func (e *Engine) Report(products []store.Product) Report {
	return Report{
		Clusters:   e.Clusters(products),
		Forecast:   e.Forecast(products),
		Elasticity: e.Elasticity(products),
		CLV:        e.CLV(products),
		Churn:      e.Churn(products),
		Sentiment:  e.Sentiment(products),
	}
}
