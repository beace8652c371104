package service

import (
	"errors"
	"fmt"
	"strings"
)

// Batch-level import failures. Both abort the request before any row is
// written; row-level problems are absorbed into the skipped counter instead.
var ErrArchivoIlegible = errors.New("no se pudo leer el archivo Excel")

// MissingColumnsError reports which required source columns are absent from
// the uploaded sheet.
type MissingColumnsError struct {
	Columnas []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("columnas faltantes: %s", strings.Join(e.Columnas, ", "))
}

var (
	ErrCredencialesInvalidas = errors.New("credenciales invalidas")
	ErrStoreNoEncontrado     = errors.New("store no encontrado")
	ErrStoreDuplicado        = errors.New("ya existe un store con ese nombre")
	ErrUsuarioDuplicado      = errors.New("ya existe un usuario con ese username")
)
