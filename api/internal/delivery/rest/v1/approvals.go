package v1

import (
	"net/http"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) submitApproval(c *gin.Context) {
	var data struct {
		TaxID     string `json:"tax_id" validate:"required,taxid"`
		LegalName string `json:"legal_name" validate:"required,min=2,max=128"`
		PixKey    string `json:"pix_key" validate:"required,pixkey"`
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

	actor := getActor(c)

	req, err := h.services.Approvals.Submit(actor, data.TaxID, data.LegalName, data.PixKey)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("submit approval error: "+err.Error(), "user_id", actor.UserID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	res := newResponseApproval(req)
	c.AbortWithStatusJSON(http.StatusOK, res)
}

func (h *Handler) approvalStatus(c *gin.Context) {
	errid := logger.GenErrorId()

	actor := getActor(c)
	if actor.UserID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	req, err := h.services.Approvals.CurrentStatus(actor.UserID)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("approval status error: "+err.Error(), "user_id", actor.UserID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	res := newResponseApproval(req)
	c.AbortWithStatusJSON(http.StatusOK, res)
}

func (h *Handler) initApprovalRoutes(g *gin.RouterGroup) {
	g.POST("/approvals", h.submitApproval)
	g.GET("/approvals/status", h.approvalStatus)
}
