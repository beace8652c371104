package service

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"osadash/internal/dto"
	"osadash/internal/model"
	"osadash/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportService ingests shelf-availability Excel exports. Deduplication is
// key-based (Policy B): a candidate whose (id_conjunto, fecha_hora_medicion)
// — or id_conjunto alone when the timestamp is absent — already exists in
// storage is skipped, which makes re-uploading the same export idempotent.
type ImportService interface {
	ImportarExcel(ctx context.Context, data []byte) (*dto.ImportReport, error)
}

type importService struct {
	repo repository.MedicionRepository
}

func NewImportService(repo repository.MedicionRepository) ImportService {
	return &importService{repo: repo}
}

// hojaCruda is the decoded sheet: ordered header plus one string map per row.
// Cells come back from excelize as display text, so long barcodes never pass
// through a float and numeric columns cannot be silently coerced.
type hojaCruda struct {
	header []string
	filas  []map[string]string
}

func decodeExcel(data []byte) (*hojaCruda, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrArchivoIlegible
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, ErrArchivoIlegible
	}
	rows, err := f.GetRows(hojas[0])
	if err != nil || len(rows) == 0 {
		return nil, ErrArchivoIlegible
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	hoja := &hojaCruda{header: header}
	for _, row := range rows[1:] {
		fila := make(map[string]string, len(header))
		vacia := true
		for j, col := range header {
			if col == "" {
				continue
			}
			if j < len(row) {
				fila[col] = row[j]
				if strings.TrimSpace(row[j]) != "" {
					vacia = false
				}
			} else {
				fila[col] = ""
			}
		}
		// fully empty rows are sheet padding, not data
		if vacia {
			continue
		}
		hoja.filas = append(hoja.filas, fila)
	}
	return hoja, nil
}

func columnasFaltantes(header []string) []string {
	presentes := make(map[string]bool, len(header))
	for _, h := range header {
		presentes[h] = true
	}
	var faltantes []string
	for _, c := range requiredCols {
		if !presentes[c] {
			faltantes = append(faltantes, c)
		}
	}
	return faltantes
}

// renombrar maps source headers to internal field names; unmapped columns
// are dropped.
func renombrar(raw map[string]string) map[string]string {
	fila := make(map[string]string, len(colsMap))
	for origen, interno := range colsMap {
		if v, ok := raw[origen]; ok {
			fila[interno] = v
		}
	}
	return fila
}

func (s *importService) ImportarExcel(ctx context.Context, data []byte) (*dto.ImportReport, error) {
	hoja, err := decodeExcel(data)
	if err != nil {
		return nil, err
	}
	if faltantes := columnasFaltantes(hoja.header); len(faltantes) > 0 {
		return nil, &MissingColumnsError{Columnas: faltantes}
	}

	// Normalization pass: rows failing coercion, required fields or the date
	// window are excluded from the candidate set but still count as skipped.
	skipped := 0
	var candidatas []*model.Medicion
	for _, raw := range hoja.filas {
		m, ok := NormalizarFila(renombrar(raw))
		if !ok {
			skipped++
			continue
		}
		candidatas = append(candidatas, m)
	}
	totalRows := len(candidatas)

	// Insert loop: per-row with skip-and-continue. Row-level failures never
	// abort the batch nor touch rows already committed.
	inserted := 0
	for _, m := range candidatas {
		dup, err := s.repo.Exists(ctx, m.IDConjunto, m.FechaHoraMedicion)
		if err != nil {
			return nil, err
		}
		if dup {
			skipped++
			continue
		}
		if err := s.repo.Create(ctx, m); err != nil {
			// A concurrent upload can win the race between the existence
			// check and the insert; the unique index turns that into a
			// duplicate-key error, which is just another skip.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Warn().Err(err).
					Str("id_conjunto", m.IDConjunto).
					Str("codigo_barra", m.CodigoBarra).
					Msg("fila no insertada")
			}
			skipped++
			continue
		}
		inserted++
	}

	return &dto.ImportReport{
		Inserted:  inserted,
		Skipped:   skipped,
		TotalRows: totalRows,
	}, nil
}
