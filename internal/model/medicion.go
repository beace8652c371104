package model

import "time"

// Medicion is one shelf-availability audit observation: a single product
// (codigo_barra) checked at a single store (pv) on a single date. Rows are
// created only by the Excel importer and are immutable afterwards — there is
// no update path, only inserts and administrative truncation.
//
// DiaSemana / NroSemana are derived from Fecha at import time; OsaFlag and
// OosFlag are derived from the upper-cased TipoResultado ("OSA" / "OOS").
// Any other tipo_resultado leaves both flags at 0.
type Medicion struct {
	ID                uint       `gorm:"primaryKey;autoIncrement"`
	IDConjunto        string     `gorm:"column:id_conjunto;size:50;not null"`
	Fecha             time.Time  `gorm:"column:fecha;type:date;not null"`
	DiaSemana         *string    `gorm:"column:dia_semana;size:20"`
	NroSemana         *string    `gorm:"column:nro_semana;size:20"`
	PV                string     `gorm:"column:pv;size:120;not null"` // tienda
	Formato           string     `gorm:"column:formato;size:60"`
	CodigoBarra       string     `gorm:"column:codigo_barra;size:32;not null"`
	DescripcionSKU    string     `gorm:"column:descripcion_sku;size:300;not null"`
	Causal            string     `gorm:"column:causal;size:200"`
	Estado            string     `gorm:"column:estado;size:40;not null"`
	TipoResultado     string     `gorm:"column:tipo_resultado;size:40;not null"`
	Categoria         string     `gorm:"column:categoria;size:100"`
	Marca             string     `gorm:"column:marca;size:120"`
	FormatoMarketing  string     `gorm:"column:formato_marketing;size:120"`
	Responsable       string     `gorm:"column:responsable;size:120"`
	SectorOperativo   string     `gorm:"column:sector_operativo;size:120"`
	Provincia         string     `gorm:"column:provincia;size:80"`
	Cliente           string     `gorm:"column:cliente;size:120"`
	Proveedor         string     `gorm:"column:proveedor;size:160"`
	FechaHoraMedicion *time.Time `gorm:"column:fecha_hora_medicion"`
	OsaFlag           int        `gorm:"column:osa_flag;not null;default:0"` // 1 OSA / 0 no
	OosFlag           int        `gorm:"column:oos_flag;not null;default:0"` // 1 OOS / 0 no
}

func (Medicion) TableName() string { return "measurements" }
