package controllers

import (
	"net/http"

	"gopress/services"

	"github.com/gin-gonic/gin"
)

// Identity and role checks shared by the controllers, invoked explicitly at
// the top of each handler that needs them.

func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func requireCreatePermission(c *gin.Context, users *services.UserService) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return 0, false
	}

	user, err := users.GetUserByID(userID)
	if err != nil || !user.CanCreatePost {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to create posts"})
		return 0, false
	}

	return userID, true
}

func requireAdmin(c *gin.Context, users *services.UserService) (uint, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return 0, false
	}

	user, err := users.GetUserByID(userID)
	if err != nil || !user.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return 0, false
	}

	return userID, true
}
