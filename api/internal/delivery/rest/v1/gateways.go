package v1

import (
	"net/http"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) setGatewayActive(c *gin.Context) {
	var data struct {
		StoreID string `json:"store_id" validate:"required,max=36"`
		Active  *bool  `json:"active" validate:"required"`
	}

	errid := logger.GenErrorId()

	provider := domain.StrToProvider(c.Param("provider"))
	if provider.IsNone() {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgUnsupportedProvider, "")
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

	if err := h.services.Activation.SetActive(data.StoreID, provider, *data.Active, actor); err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.TemplActivationErr("set active error: "+err.Error(), errid, data.StoreID, provider.ToString(), err)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseActivation{
		Error:    false,
		Provider: provider.ToString(),
		Active:   *data.Active,
	})
}

func (h *Handler) saveGatewayCredentials(c *gin.Context) {
	var data struct {
		StoreID     string            `json:"store_id" validate:"required,max=36"`
		Credentials map[string]string `json:"credentials" validate:"required"`
	}

	errid := logger.GenErrorId()

	provider := domain.StrToProvider(c.Param("provider"))
	if provider.IsNone() {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgUnsupportedProvider, "")
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

	if err := h.services.Activation.SaveCredentials(data.StoreID, provider, domain.JSONMap(data.Credentials), actor); err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.TemplActivationErr("save credentials error: "+err.Error(), errid, data.StoreID, provider.ToString(), err)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseCredentialsSaved{
		Error:    false,
		Provider: provider.ToString(),
	})
}

func (h *Handler) listGateways(c *gin.Context) {
	errid := logger.GenErrorId()

	storeID := c.Query("store_id")
	if storeID == "" {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	actor := getActor(c)

	cfgs, err := h.services.Activation.GetConfigurations(storeID, actor)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.Error("list gateways error: "+err.Error(), "store_id", storeID, "error_id", errid)
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	gateways := make([]responseGatewayConfig, 0, len(cfgs))
	for i := range cfgs {
		gateways = append(gateways, newResponseGatewayConfig(&cfgs[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, responseGatewayList{
		Error:    false,
		StoreID:  storeID,
		Gateways: gateways,
	})
}

func (h *Handler) initGatewayRoutes(g *gin.RouterGroup) {
	g.PUT("/gateways/:provider/active", h.setGatewayActive)
	g.POST("/gateways/:provider/credentials", h.saveGatewayCredentials)
	g.GET("/gateways", h.listGateways)
}
