package handler

import (
	"errors"
	"net/http"
	"strconv"

	"osadash/internal/apierror"
	"osadash/internal/dto"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type StoresHandler struct{ svc service.StoreService }

func NewStoresHandler(svc service.StoreService) *StoresHandler {
	return &StoresHandler{svc: svc}
}

func parseStoreID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

func (h *StoresHandler) Listar(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	resp, err := h.svc.Listar(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar stores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseStoreID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStoreNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Store not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al obtener store"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoresHandler) Crear(c *gin.Context) {
	var req dto.StoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrStoreDuplicado) {
			c.JSON(http.StatusConflict, apierror.New("Store name already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear store"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseStoreID(c)
	if !ok {
		return
	}
	var req dto.StoreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Store not found"))
		case errors.Is(err, service.ErrStoreDuplicado):
			c.JSON(http.StatusConflict, apierror.New("Store name already exists"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar store"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StoresHandler) Eliminar(c *gin.Context) {
	id, ok := parseStoreID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStoreNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Store not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar store"))
		return
	}
	c.Status(http.StatusNoContent)
}
