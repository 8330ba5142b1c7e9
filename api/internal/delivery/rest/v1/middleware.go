package v1

import (
	"net/http"
	"time"

	"payhub/api/internal/domain"
	"payhub/api/internal/infra/cache"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

const PAYMENT_RATE_LIMIT = 60
const EXPIRATION_SECONDS = 30

// actorMiddleware trusts the identity headers resolved by the edge. Token
// validation happens before the request reaches this service.
func (h *Handler) actorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := domain.Actor{
			UserID:  c.Request.Header.Get("X-User-Id"),
			StoreID: c.Request.Header.Get("X-Store-Id"),
			Role:    domain.StrToRole(c.Request.Header.Get("X-User-Role")),
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func getActor(c *gin.Context) domain.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}
	}
	actor, ok := v.(domain.Actor)
	if !ok {
		return domain.Actor{}
	}
	return actor
}

func (h *Handler) adminAccessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.config.PrivateKey != c.Request.Header.Get("Access") {
			responseErr(c, http.StatusUnauthorized, domain.ErrMsgAccessError, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// returns true if rate limit is exceeded
func paymentRateLimit(storeID string, limit int) bool {
	var expiration = time.Second * time.Duration(EXPIRATION_SECONDS)

	count := cache.PaymentRateLimitsCache.LoadOrSet(storeID, 1, expiration)
	if count == nil {
		return true
	}

	countInt, ok := count.(int)
	if !ok {
		return true
	}

	if countInt > limit {
		return true
	}

	cache.PaymentRateLimitsCache.Set(storeID, countInt+1, expiration)
	return false
}
