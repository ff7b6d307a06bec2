package utils

import (
	"github.com/dog-key/pre-order/entity"
	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return entity.Role(s)
		}
	}
	return entity.RoleCustomer
}
