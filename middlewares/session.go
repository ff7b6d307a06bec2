package middlewares

import (
	"net/http"

	"github.com/dog-key/pre-order/entity"
	"github.com/gin-gonic/gin"
)

// demo นี้ไม่มีระบบ login — ทุก request เป็น user คนเดียว
const DefaultUserID = "user-1"

// SessionMiddleware ใส่ userId + role ลง context
// role มาจาก header X-Role (merchant dashboard ส่ง "merchant"), default customer
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", DefaultUserID)

		role := entity.RoleCustomer
		if c.GetHeader("X-Role") == string(entity.RoleMerchant) {
			role = entity.RoleMerchant
		}
		c.Set("role", string(role))

		c.Next()
	}
}

// RequireRole กันเส้นทาง merchant — ฝั่ง service ก็เช็ค Role ซ้ำอีกชั้น
func RequireRole(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}
