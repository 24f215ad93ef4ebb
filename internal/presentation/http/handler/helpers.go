package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0
	}
	return userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	name, ok := role.(string)
	if !ok {
		return ""
	}
	return name
}

// GetUserSections extracts the permitted sections from the Gin context
func GetUserSections(c *gin.Context) []string {
	sections, exists := c.Get("user_sections")
	if !exists {
		return nil
	}
	list, ok := sections.([]string)
	if !ok {
		return nil
	}
	return list
}

// ParseIDParam parses a numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ParseInt64Param parses a signed numeric path parameter
func ParseInt64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
