package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "github.com/Technologic101/nextjs-dashboard/internal/handler/dto/request"
	resdto "github.com/Technologic101/nextjs-dashboard/internal/handler/dto/response"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/commands"
	"github.com/Technologic101/nextjs-dashboard/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgSomethingWentWrong = "Something went wrong"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary User login
// @Description Check email and password and redirect to the dashboard
// @Tags auth
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /dashboard"
// @Failure 401 {object} resdto.FormState
// @Failure 500 {object} resdto.FormState
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, err := reqdto.BindLogin(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, resdto.Message(MsgInvalidCredentials))
		return
	}

	u, err := h.cmds.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, resdto.Message(MsgInvalidCredentials))
			return
		}
		_ = c.Error(err)
		slog.ErrorContext(c.Request.Context(), "authentication failed", "error", err)
		c.JSON(http.StatusInternalServerError, resdto.Message(MsgSomethingWentWrong))
		return
	}

	slog.InfoContext(c.Request.Context(), "user signed in", "user_id", u.ID)
	c.Redirect(http.StatusSeeOther, shared.DashboardPath)
}
