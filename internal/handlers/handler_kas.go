package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sistemtoko/sistem_toko_app/internal/apperrors"
	portssvc "github.com/sistemtoko/sistem_toko_app/internal/core/ports/services"
	"github.com/sistemtoko/sistem_toko_app/internal/dto"
	"github.com/sistemtoko/sistem_toko_app/internal/middleware"
)

// kasHandler handles HTTP requests for cash/bank registers.
type kasHandler struct {
	kasService portssvc.KasSvcFacade
}

func newKasHandler(svc portssvc.KasSvcFacade) *kasHandler {
	return &kasHandler{kasService: svc}
}

// registerKasRoutes registers routes related to cash/bank registers.
func registerKasRoutes(rg *gin.RouterGroup, svc portssvc.KasSvcFacade) {
	h := newKasHandler(svc)

	kas := rg.Group("/kas")
	{
		kas.POST("", h.createKas)
		kas.GET("", h.listKas)
		kas.GET("/:id", h.getKas)
		kas.PUT("/:id", h.updateKas)
		kas.DELETE("/:id", h.deleteKas)
	}
}

// bindingErrorMessage flattens validator errors into one readable string.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request format: " + err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" failed on "+fe.Tag())
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// respondServiceError translates the service error taxonomy to HTTP statuses:
// 404 for missing resources, 400 for everything the client can fix.
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.WebResponse{Errors: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrAlreadyUsed),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.WebResponse{Errors: "internal server error"})
	}
}

func parseKasID(c *gin.Context) (int64, bool) {
	kasID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || kasID <= 0 {
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: "id must be a positive integer"})
		return 0, false
	}
	return kasID, true
}

// createKas godoc
// @Summary Create a cash/bank register
// @Description Creates a register together with its primary ledger account
// @Tags kas
// @Accept json
// @Produce json
// @Param kas body dto.CreateKasRequest true "Register details"
// @Success 200 {object} dto.WebResponse{data=dto.KasResponse}
// @Failure 400 {object} dto.WebResponse
// @Failure 401 {object} dto.WebResponse
// @Security BearerAuth
// @Router /kas [post]
func (h *kasHandler) createKas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateKasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create kas request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: bindingErrorMessage(err)})
		return
	}

	resp, err := h.kasService.CreateKas(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}

// getKas godoc
// @Summary Get a register by id
// @Tags kas
// @Produce json
// @Param id path int true "Register ID"
// @Success 200 {object} dto.WebResponse{data=dto.KasResponse}
// @Failure 404 {object} dto.WebResponse
// @Security BearerAuth
// @Router /kas/{id} [get]
func (h *kasHandler) getKas(c *gin.Context) {
	kasID, ok := parseKasID(c)
	if !ok {
		return
	}

	resp, err := h.kasService.GetKasByID(c.Request.Context(), kasID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}

// listKas godoc
// @Summary List registers
// @Description Lists registers filtered by an optional name fragment; only active registers unless isActive=false
// @Tags kas
// @Produce json
// @Param name query string false "Name fragment"
// @Param isActive query bool false "Active flag (default true)"
// @Success 200 {object} dto.WebResponse{data=[]dto.KasResponse}
// @Security BearerAuth
// @Router /kas [get]
func (h *kasHandler) listKas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListKasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind kas list params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: bindingErrorMessage(err)})
		return
	}

	resp, err := h.kasService.ListKas(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}

// updateKas godoc
// @Summary Update a register
// @Description Updates a register after the usage guard confirms its primary account is unused
// @Tags kas
// @Accept json
// @Produce json
// @Param id path int true "Register ID"
// @Param kas body dto.UpdateKasRequest true "Fields to update"
// @Success 200 {object} dto.WebResponse{data=dto.KasResponse}
// @Failure 400 {object} dto.WebResponse
// @Failure 404 {object} dto.WebResponse
// @Security BearerAuth
// @Router /kas/{id} [put]
func (h *kasHandler) updateKas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kasID, ok := parseKasID(c)
	if !ok {
		return
	}

	var req dto.UpdateKasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update kas request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.WebResponse{Errors: bindingErrorMessage(err)})
		return
	}

	resp, err := h.kasService.UpdateKas(c.Request.Context(), kasID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}

// deleteKas godoc
// @Summary Delete a register
// @Description Deletes a register together with its primary (and linked secondary) ledger account
// @Tags kas
// @Produce json
// @Param id path int true "Register ID"
// @Success 200 {object} dto.WebResponse{data=dto.KasResponse}
// @Failure 400 {object} dto.WebResponse
// @Failure 404 {object} dto.WebResponse
// @Security BearerAuth
// @Router /kas/{id} [delete]
func (h *kasHandler) deleteKas(c *gin.Context) {
	kasID, ok := parseKasID(c)
	if !ok {
		return
	}

	resp, err := h.kasService.DeleteKas(c.Request.Context(), kasID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebResponse{Data: resp})
}
