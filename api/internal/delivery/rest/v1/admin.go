package v1

import (
	"net/http"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) pendingApprovals(c *gin.Context) {
	errid := logger.GenErrorId()

	actor := getActor(c)

	requests, err := h.services.Approvals.ListPending(actor)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("list pending approvals error: "+err.Error(), "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	res := responseApprovalList{Error: false, Requests: make([]responseApproval, 0, len(requests))}
	for i := range requests {
		res.Requests = append(res.Requests, newResponseApproval(&requests[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, res)
}

func (h *Handler) decideApproval(c *gin.Context) {
	var data struct {
		Approve *bool  `json:"approve" validate:"required"`
		Notes   string `json:"notes" validate:"max=512"`
	}

	errid := logger.GenErrorId()

	requestID := c.Param("request_id")
	if requestID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Debug("bind json error: " + err.Error())
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, errid)
		return
	}

	if !validateStruct(c, data) {
		return
	}

	actor := getActor(c)

	req, err := h.services.Approvals.Decide(actor, requestID, *data.Approve, data.Notes)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("decide approval error: "+err.Error(), "request_id", requestID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	res := newResponseApproval(req)
	c.AbortWithStatusJSON(http.StatusOK, res)
}

func (h *Handler) getDefaultGateway(c *gin.Context) {
	errid := logger.GenErrorId()

	provider, err := h.services.Settings.DefaultProvider()
	if err != nil {
		h.log.Error("get default gateway error: "+err.Error(), "error_id", errid)
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseDefaultGateway{
		Error:    false,
		Provider: provider.ToString(),
	})
}

func (h *Handler) setDefaultGateway(c *gin.Context) {
	var data struct {
		Provider string `json:"provider" validate:"required,provider"`
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
	provider := domain.StrToProvider(data.Provider)

	if err := h.services.Settings.SetDefaultProvider(actor, provider); err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("set default gateway error: "+err.Error(), "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseDefaultGateway{
		Error:    false,
		Provider: provider.ToString(),
	})
}

func (h *Handler) initAdminRoutes(g *gin.RouterGroup) {
	admin := g.Group("/admin", h.adminAccessMiddleware())

	admin.GET("/approvals/pending", h.pendingApprovals)
	admin.POST("/approvals/:request_id/decision", h.decideApproval)
	admin.GET("/settings/default-gateway", h.getDefaultGateway)
	admin.PUT("/settings/default-gateway", h.setDefaultGateway)
}
