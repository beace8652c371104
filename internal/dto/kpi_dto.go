package dto

import "time"

// KpiFilter narrows KPI and measurement queries. A zero/nil field means
// "no constraint on that field", never "match empty".
type KpiFilter struct {
	Store    string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PuntoSerie struct {
	Date   string  `json:"date"` // ISO-8601 date
	OsaPct float64 `json:"osa_pct"`
}

type WorstSku struct {
	Barcode string  `json:"barcode"`
	OsaPct  float64 `json:"osa_pct"`
}

// KpiReport carries the aggregated result. OsaPct and OosPct are independent
// percentages: the flags are not complementary, so they need not sum to 100.
type KpiReport struct {
	Total    int64        `json:"total"`
	OsaPct   float64      `json:"osa_pct"`
	OosPct   float64      `json:"oos_pct"`
	Series   []PuntoSerie `json:"series"`
	WorstSku []WorstSku   `json:"worst_sku"`
}
