package handlers

import (
	"errors"
	"net/http"

	"school_admin/internal/service"

	"github.com/gin-gonic/gin"
)

// Generic per-flow failure texts; raw persistence errors are logged, never
// shown to the client.
const (
	errSignupFailed = "Registration failed. Please try again."
	errLoginFailed  = "Login failed. Please try again."
)

// violationsOf unpacks a service ValidationError into its message list, or
// returns nil if err is of another kind.
func violationsOf(err error) []string {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr.Violations
	}
	return nil
}

// @Summary      Signup form
// @Tags         auth
// @Produce      html
// @Success      200 {string} string "HTML form"
// @Router       /signup [get]
func (h *Handler) signupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"FullName": "", "Email": ""})
}

// @Summary      Create account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        fullname formData string true "Full name"
// @Param        email    formData string true "Email address"
// @Param        password formData string true "Password (min 8 chars)"
// @Success      302 {string} string "redirect to /login?signup=success"
// @Router       /signup [post]
func (h *Handler) signup(c *gin.Context) {
	fullname := c.PostForm("fullname")
	email := c.PostForm("email")
	password := c.PostForm("password")

	rerender := func(errs []string) {
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"Errors":   errs,
			"FullName": fullname,
			"Email":    email,
		})
	}

	_, err := h.services.Accounts.SignUp(c.Request.Context(), fullname, email, password)
	if err != nil {
		if errs := violationsOf(err); errs != nil {
			rerender(errs)
			return
		}
		if h.log != nil {
			h.log.Errorw("signup_failed", "email", email, "err", err)
		}
		rerender([]string{errSignupFailed})
		return
	}

	c.Redirect(http.StatusFound, "/login?signup=success")
}

// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200 {string} string "HTML form"
// @Router       /login [get]
func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"SignupSuccess": c.Query("signup") == "success",
		"ResetSuccess":  c.Query("reset") == "success",
		"Email":         "",
	})
}

// @Summary      Authenticate
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email    formData string true "Email address"
// @Param        password formData string true "Password"
// @Success      302 {string} string "redirect to /dashboard; session cookie set"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	rerender := func(errs []string) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Errors": errs,
			"Email":  email,
		})
	}

	u, err := h.services.Accounts.Login(c.Request.Context(), email, password)
	if err != nil {
		if errs := violationsOf(err); errs != nil {
			rerender(errs)
			return
		}
		// Unknown email and wrong password share one message.
		if errors.Is(err, service.ErrInvalidCredentials) {
			rerender([]string{service.MsgBadCredentials})
			return
		}
		if h.log != nil {
			h.log.Errorw("login_failed", "email", email, "err", err)
		}
		rerender([]string{errLoginFailed})
		return
	}

	sess := h.services.Sessions.Create(u.ID, u.FullName)
	setSessionCookie(c, sess.Token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// @Summary      Logout
// @Tags         auth
// @Success      302 {string} string "redirect to /login"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		h.services.Sessions.Destroy(token)
	}
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
