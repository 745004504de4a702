package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
	"github.com/sistemtoko/sistem_toko_app/internal/dto"
)

// akunHandler handles HTTP lookups against the chart of accounts.
type akunHandler struct {
	akunService portssvc.AkunSvcFacade
}

func newAkunHandler(svc portssvc.AkunSvcFacade) *akunHandler {
	return &akunHandler{akunService: svc}
}

// registerAkunRoutes registers the account directory read routes.
func registerAkunRoutes(rg *gin.RouterGroup, svc portssvc.AkunSvcFacade) {
	h := newAkunHandler(svc)

	akun := rg.Group("/akun")
	{
		akun.GET("", h.getAkunByName)
		akun.GET("/:code", h.getAkunByCode)
	}
}

// getAkunByCode godoc
// @Summary Get a ledger account by code
// @Tags akun
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.WebResponse{data=dto.AccountResponse}
// @Failure 404 {object} dto.WebResponse
// @Security BearerAuth
// @Router /akun/{code} [get]
func (h *akunHandler) getAkunByCode(c *gin.Context) {
	account, err := h.akunService.GetAccountByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.ToAccountResponse(account)
	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}

// getAkunByName godoc
// @Summary Get the first ledger account matching a name
// @Tags akun
// @Produce json
// @Param name query string true "Account name"
// @Success 200 {object} dto.WebResponse{data=dto.AccountResponse}
// @Failure 404 {object} dto.WebResponse
// @Security BearerAuth
// @Router /akun [get]
func (h *akunHandler) getAkunByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: "name query parameter is required"})
		return
	}

	account, err := h.akunService.GetAccountByName(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.ToAccountResponse(account)
	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}
