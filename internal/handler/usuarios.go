package handler

import (
	"errors"
	"net/http"

	"osadash/internal/apierror"
	"osadash/internal/dto"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioDuplicado) {
			c.JSON(http.StatusConflict, apierror.New("Username already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al crear usuario"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
