package v1

import (
	"net/http"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) commissionSummary(c *gin.Context) {
	errid := logger.GenErrorId()

	storeID := c.Query("store_id")
	if storeID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	actor := getActor(c)
	if !actor.IsAdmin() && !actor.OwnsStore(storeID) {
		responseErr(c, http.StatusForbidden, domain.ErrMsgInsufficientRole, "")
		return
	}

	summary, err := h.services.Commissions.StoreSummary(storeID)
	if err != nil {
		h.log.Error("commission summary error: "+err.Error(), "store_id", storeID, "error_id", errid)
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseCommissionSummary{
		Error:      false,
		StoreID:    storeID,
		Count:      summary.Count,
		Gross:      summary.Gross,
		Commission: summary.Commission,
		Net:        summary.Net,
	})
}

func (h *Handler) commissionBySale(c *gin.Context) {
	errid := logger.GenErrorId()

	saleID := c.Param("sale_id")
	if saleID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	commission, err := h.services.Commissions.FindBySale(saleID)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("find commission error: "+err.Error(), "sale_id", saleID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	actor := getActor(c)
	if !actor.IsAdmin() && !actor.OwnsStore(commission.StoreID) {
		responseErr(c, http.StatusForbidden, domain.ErrMsgInsufficientRole, "")
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseCommission{
		Error:      false,
		SaleID:     commission.SaleID,
		Gross:      commission.GrossAmount,
		Commission: commission.CommissionAmount,
		Net:        commission.NetAmount,
		SaleDate:   commission.SaleDate.Format("2006-01-02 15:04:05"),
	})
}

func (h *Handler) initCommissionRoutes(g *gin.RouterGroup) {
	g.GET("/commissions/summary", h.commissionSummary)
	g.GET("/commissions/sale/:sale_id", h.commissionBySale)
}
