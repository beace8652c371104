package dto

import "time"

// MedicionFilter selects measurements for listing; most-recent-first,
// capped at Limit rows.
type MedicionFilter struct {
	Store    string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MedicionResponse struct {
	ID             uint   `json:"id"`
	Fecha          string `json:"fecha"`
	PV             string `json:"pv"`
	CodigoBarra    string `json:"codigo_barra"`
	DescripcionSKU string `json:"descripcion_sku"`
	Estado         string `json:"estado"`
	TipoResultado  string `json:"tipo_resultado"`
	Provincia      string `json:"provincia"`
	OsaFlag        int    `json:"osa_flag"`
	OosFlag        int    `json:"oos_flag"`
}

type MedicionListResponse struct {
	Items []MedicionResponse `json:"items"`
}
