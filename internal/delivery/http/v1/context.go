package v1

import (
	"go-careers-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// adminID returns the verified admin id attached by the request gate. The
// gate is the only writer of this key; an empty value on a protected route
// means the request was misrouted and must be rejected, not trusted.
func adminID(c *gin.Context) string {
	return c.GetString(string(domain.KeyAdminID))
}
