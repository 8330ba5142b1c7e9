package v1

import (
	"net/http"
	"time"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"
	"payhub/pkg/nats/natsdomain"
	"payhub/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) createPayment(c *gin.Context) {
	var data struct {
		SaleID      string `json:"sale_id" validate:"required,max=36"`
		StoreID     string `json:"store_id" validate:"required,max=36"`
		PayerID     string `json:"payer_id" validate:"max=36"`
		Amount      string `json:"amount" validate:"required"`
		Description string `json:"description" validate:"max=256"`

		AmountDecimal decimal.Decimal `json:"-"` // used after validation
	}

	errid := logger.GenErrorId()

	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Debug("bind json error: " + err.Error())
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, errid)
		return
	}

	if !validateStruct(c, data) {
		return
	}

	ad, err := decimal.NewFromString(data.Amount)
	if err != nil || ad.Sign() <= 0 {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}
	data.AmountDecimal = ad

	if paymentRateLimit(data.StoreID, PAYMENT_RATE_LIMIT) {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded, "")
		return
	}

	res, provider, err := h.services.Payments.CreatePayment(c.Request.Context(), data.StoreID, &domain.CreatePaymentRequest{
		SaleID:      data.SaleID,
		StoreID:     data.StoreID,
		PayerID:     data.PayerID,
		Amount:      data.AmountDecimal,
		Description: data.Description,
	})
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("create payment error: "+err.Error(), "store_id", data.StoreID, "sale_id", data.SaleID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), errid)
		return
	}

	// testing mode settles wallet sales immediately, no sale pipeline needed
	if h.config.Testing.Enabled && provider.IsWallet() {
		h.publishTestSettlement(data.SaleID, data.StoreID, data.PayerID, data.AmountDecimal)
	}

	c.AbortWithStatusJSON(http.StatusOK, responsePaymentCreated{
		Error:       false,
		PaymentID:   res.PaymentID,
		Provider:    provider.ToString(),
		Code:        res.Code,
		QrCode:      res.QrCode,
		RedirectURL: res.RedirectURL,
	})
}

func (h *Handler) publishTestSettlement(saleID, storeID, payerID string, amount decimal.Decimal) {
	settled := utils.MustMarshal(natsdomain.SaleSettled{
		SaleID:        saleID,
		StoreID:       storeID,
		PayerID:       payerID,
		Amount:        amount,
		PaymentMethod: domain.PROVIDER_WALLET.ToString(),
		Status:        natsdomain.SaleStatusPaid,
		SaleDate:      time.Now(),
	})

	msgId := natsdomain.NewMsgId(saleID, natsdomain.MsgActionSettlement)
	if err := h.Natsinfra.JsPublishMsgId(natsdomain.SubjJsSaleSettled.String(), settled, msgId); err != nil {
		h.log.TemplNatsError("test settlement publish error", h.Natsinfra.Nc.ConnectedUrl(), err)
	}
}

func (h *Handler) paymentStatus(c *gin.Context) {
	errid := logger.GenErrorId()

	paymentID := c.Param("payment_id")
	storeID := c.Query("store_id")
	if paymentID == "" || storeID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	status, err := h.services.Payments.CheckStatus(c.Request.Context(), storeID, paymentID)
	if err != nil {
		httpStatus := domain.GetStatusByErr(err)
		if httpStatus == http.StatusInternalServerError {
			h.log.Error("payment status error: "+err.Error(), "store_id", storeID, "payment_id", paymentID, "error_id", errid)
			responseErr(c, httpStatus, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, httpStatus, err.Error(), errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responsePaymentStatus{
		Error:  false,
		Status: status.Status,
		Paid:   status.Paid,
	})
}

func (h *Handler) initPaymentRoutes(g *gin.RouterGroup) {
	g.POST("/payments", h.createPayment)
	g.GET("/payments/:payment_id/status", h.paymentStatus)
}
