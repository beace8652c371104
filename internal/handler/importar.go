package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"osadash/internal/apierror"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct{ svc service.ImportService }

func NewImportHandler(svc service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// ImportarExcel handles POST /api/import/excel: multipart upload, extension
// gate, then the full ingestion pipeline. Structural problems (wrong
// extension, unreadable file, missing columns) are client errors; row-level
// problems only show up in the report counters.
func (h *ImportHandler) ImportarExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo requerido (campo 'file')"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo debe ser .xlsx o .xls"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo abrir el archivo"))
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}

	report, err := h.svc.ImportarExcel(c.Request.Context(), data)
	if err != nil {
		var mc *service.MissingColumnsError
		switch {
		case errors.As(err, &mc):
			c.JSON(http.StatusBadRequest, apierror.New("Columnas faltantes: "+strings.Join(mc.Columnas, ", ")))
		case errors.Is(err, service.ErrArchivoIlegible):
			c.JSON(http.StatusBadRequest, apierror.New("Error leyendo Excel"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al importar mediciones"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
