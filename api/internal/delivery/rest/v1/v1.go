package v1

import (
	"payhub/api/internal/config"
	"payhub/api/internal/infra/nats"
	"payhub/api/internal/logger"
	"payhub/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	services  *service.Services
	db        *gorm.DB
	config    *config.Config
	Natsinfra *nats.NatsInfra
	log       logger.Logger
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	g.Use(h.actorMiddleware())

	{
		h.initGatewayRoutes(g)
		h.initApprovalRoutes(g)
		h.initPaymentRoutes(g)
		h.initCommissionRoutes(g)

		h.initAdminRoutes(g)
	}
}

func NewHandler(services *service.Services, db *gorm.DB, config *config.Config, natsinfra *nats.NatsInfra, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		Natsinfra: natsinfra,
		log:       log,
		services:  services,
		db:        db,
	}
}
