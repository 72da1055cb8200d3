package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard counters. Static for now; student/teacher/class management is a
// separate system.
const (
	totalStudents = 150
	totalTeachers = 20
	totalClasses  = 10
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Dashboard
// @Tags         dashboard
// @Produce      html
// @Success      200 {string} string "dashboard page"
// @Failure      302 {string} string "redirect to /login when no session"
// @Router       /dashboard [get]
func (h *Handler) dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"FullName": c.GetString(ctxFullName),
		"Students": totalStudents,
		"Teachers": totalTeachers,
		"Classes":  totalClasses,
	})
}
