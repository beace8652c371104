package handler

import (
	"errors"
	"net/http"

	"osadash/internal/apierror"
	"osadash/internal/dto"
	"osadash/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, apierror.New("Credenciales inválidas"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error de autenticacion"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
