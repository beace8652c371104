package service

// colsMap translates the Spanish Excel export headers to internal field
// names. Source columns not listed here are ignored at import time.
var colsMap = map[string]string{
	"IdConjuntoProducto":      "id_conjunto",
	"Fecha":                   "fecha",
	"Dia de la semana":        "dia_semana",
	"Nro de Semana":           "nro_semana",
	"PV":                      "pv",
	"Formato":                 "formato",
	"Codigo de Barra":         "codigo_barra",
	"Descripcion SKU":         "descripcion_sku",
	"Causal":                  "causal",
	"ESTADO":                  "estado",
	"Tipo de Resultado":       "tipo_resultado",
	"Categoría":               "categoria",
	"Marca":                   "marca",
	"Formato Marketing":       "formato_marketing",
	"Responsable":             "responsable",
	"Sector Operativo Cadena": "sector_operativo",
	"Provincia":               "provincia",
	"Nombre Cliente":          "cliente",
	"Proveedor":               "proveedor",
	"FechaHoraMedicion":       "fecha_hora_medicion",
}

// requiredCols must all be present in the sheet header; a miss rejects the
// whole upload before any row is processed.
var requiredCols = []string{
	"IdConjuntoProducto",
	"Fecha",
	"PV",
	"Codigo de Barra",
	"Descripcion SKU",
	"ESTADO",
	"Tipo de Resultado",
}
