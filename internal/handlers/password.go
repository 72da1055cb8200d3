package handlers

import (
	"errors"
	"net/http"

	"school_admin/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errResetFailed = "An error occurred. Please try again."

	// Shown for known and unknown addresses alike; revealing which emails
	// exist would let an attacker enumerate accounts.
	msgResetRequested = "If an account with that email exists, a reset link has been sent."
)

// @Summary      Forgot-password form
// @Tags         password
// @Produce      html
// @Success      200 {string} string "HTML form"
// @Router       /forgot-password [get]
func (h *Handler) forgotPasswordForm(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", gin.H{"Email": ""})
}

// @Summary      Request password reset
// @Tags         password
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email formData string true "Email address"
// @Success      200 {string} string "neutral acknowledgment"
// @Router       /forgot-password [post]
func (h *Handler) forgotPassword(c *gin.Context) {
	email := c.PostForm("email")

	if err := h.services.PasswordReset.RequestReset(c.Request.Context(), email); err != nil {
		if errs := violationsOf(err); errs != nil {
			c.HTML(http.StatusOK, "forgot_password.html", gin.H{
				"Errors": errs,
				"Email":  email,
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("forgot_password_failed", "email", email, "err", err)
		}
		c.HTML(http.StatusOK, "forgot_password.html", gin.H{
			"Errors": []string{errResetFailed},
			"Email":  email,
		})
		return
	}

	c.HTML(http.StatusOK, "forgot_password.html", gin.H{
		"Success": msgResetRequested,
		"Email":   "",
	})
}

// @Summary      Reset-password form
// @Tags         password
// @Produce      html
// @Param        token query string true "Reset token"
// @Success      200 {string} string "form when the token is valid, dead-end message otherwise"
// @Router       /reset-password [get]
func (h *Handler) resetPasswordForm(c *gin.Context) {
	token := c.Query("token")

	valid, err := h.services.PasswordReset.ValidateResetToken(c.Request.Context(), token)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("reset_token_lookup_failed", "err", err)
		}
		valid = false
	}

	c.HTML(http.StatusOK, "reset_password.html", gin.H{
		"ValidToken": valid,
		"Token":      token,
	})
}

// @Summary      Set new password
// @Tags         password
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        token            query    string true "Reset token"
// @Param        password         formData string true "New password (min 8 chars)"
// @Param        confirm_password formData string true "Confirmation"
// @Success      302 {string} string "redirect to /login?reset=success"
// @Router       /reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	token := c.Query("token")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	err := h.services.PasswordReset.ResetPassword(c.Request.Context(), token, password, confirm)
	if err != nil {
		if errs := violationsOf(err); errs != nil {
			c.HTML(http.StatusOK, "reset_password.html", gin.H{
				"ValidToken": true,
				"Token":      token,
				"Errors":     errs,
			})
			return
		}
		if errors.Is(err, service.ErrResetTokenInvalid) {
			// Token expired or was consumed between page load and submit.
			c.HTML(http.StatusOK, "reset_password.html", gin.H{
				"ValidToken": false,
			})
			return
		}
		if h.log != nil {
			h.log.Errorw("reset_password_failed", "err", err)
		}
		c.HTML(http.StatusOK, "reset_password.html", gin.H{
			"ValidToken": true,
			"Token":      token,
			"Errors":     []string{errResetFailed},
		})
		return
	}

	c.Redirect(http.StatusFound, "/login?reset=success")
}
