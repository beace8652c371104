package service

import (
	"fmt"
	"strings"
	"time"

	"osadash/internal/model"
)

// Rows dated outside this window are treated as spreadsheet export noise and
// dropped without error.
var (
	fechaMin = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	fechaMax = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
)

// Day-first layouts are tried before ISO ones: the exports come from a
// dd/mm/yyyy locale, so "03/04/2024" means April 3rd.
var layoutsFecha = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
}

var layoutsFechaHora = []string{
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"2006-01-02",
}

func parseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsFecha {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			// normalize to midnight: fecha is a pure date
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseFechaHora(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsFechaHora {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// limpiarBarcode undoes the numeric round-trip spreadsheet engines apply to
// long barcodes: "7791234567890.0" → "7791234567890".
func limpiarBarcode(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	return strings.TrimSpace(s)
}

// NormalizarFila turns one renamed raw row (internal field name → raw cell
// text) into a validated Medicion. The second return value is false when the
// row must be dropped: unparseable or out-of-range fecha, or any required
// field empty after coercion. Dropped rows are counted by the caller, never
// reported individually.
func NormalizarFila(fila map[string]string) (*model.Medicion, bool) {
	get := func(campo string) string { return strings.TrimSpace(fila[campo]) }

	fecha, ok := parseFecha(fila["fecha"])
	if !ok {
		return nil, false
	}
	if fecha.Before(fechaMin) || fecha.After(fechaMax) {
		return nil, false
	}

	estado := strings.ToUpper(get("estado"))
	tipoResultado := strings.ToUpper(get("tipo_resultado"))
	codigoBarra := limpiarBarcode(fila["codigo_barra"])

	m := &model.Medicion{
		IDConjunto:       get("id_conjunto"),
		Fecha:            fecha,
		PV:               get("pv"),
		Formato:          get("formato"),
		CodigoBarra:      codigoBarra,
		DescripcionSKU:   get("descripcion_sku"),
		Causal:           get("causal"),
		Estado:           estado,
		TipoResultado:    tipoResultado,
		Categoria:        get("categoria"),
		Marca:            get("marca"),
		FormatoMarketing: get("formato_marketing"),
		Responsable:      get("responsable"),
		SectorOperativo:  get("sector_operativo"),
		Provincia:        get("provincia"),
		Cliente:          get("cliente"),
		Proveedor:        get("proveedor"),
	}

	if m.IDConjunto == "" || m.PV == "" || m.CodigoBarra == "" ||
		m.DescripcionSKU == "" || m.Estado == "" || m.TipoResultado == "" {
		return nil, false
	}

	if fechaHora, ok := parseFechaHora(fila["fecha_hora_medicion"]); ok {
		m.FechaHoraMedicion = &fechaHora
	}

	if m.TipoResultado == "OSA" {
		m.OsaFlag = 1
	}
	if m.TipoResultado == "OOS" {
		m.OosFlag = 1
	}

	// Weekday / ISO week always derived from fecha; the source columns, when
	// present, are unreliable across export variants.
	dia := fecha.Weekday().String()
	_, semana := fecha.ISOWeek()
	nro := fmt.Sprintf("%02d", semana)
	m.DiaSemana = &dia
	m.NroSemana = &nro

	return m, true
}
