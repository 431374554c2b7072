package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminDashboard returns platform-wide aggregate counts.
func (s *Server) adminDashboard(c *gin.Context) {
	stats, err := s.store.DashboardStats()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, stats)
}

// pendingLawyers lists lawyer profiles awaiting verification.
func (s *Server) pendingLawyers(c *gin.Context) {
	lawyers, err := s.store.ListUnverifiedLawyers()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, lawyers)
}

// recentActivity lists the latest case requests and cases.
func (s *Server) recentActivity(c *gin.Context) {
	activity, err := s.store.RecentActivity()
	if shouldInterrupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, activity)
}
