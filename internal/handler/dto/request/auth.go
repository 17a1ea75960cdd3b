package request

import "github.com/gin-gonic/gin"

// LoginRequest fields are optional at the binding level; shape checks belong
// to the authenticator so that every bad submission reads the same.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func BindLogin(c *gin.Context) (LoginRequest, error) {
	var req LoginRequest
	err := c.ShouldBind(&req)
	return req, err
}
