package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-management-backend/services"
	"hotel-management-backend/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

func (rc *ReportController) GetRevenue(c *gin.Context) {
	total, err := rc.Reports.TotalRevenue()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	today, err := rc.Reports.TodayRevenue()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"total": total, "today": today})
}

func (rc *ReportController) GetMonthlyRevenue(c *gin.Context) {
	rows, err := rc.Reports.RevenueByMonth()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (rc *ReportController) GetRevenueByMethod(c *gin.Context) {
	rows, err := rc.Reports.RevenueByMethod()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (rc *ReportController) GetRoomStatistics(c *gin.Context) {
	rows, err := rc.Reports.RoomStatistics()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

// GetTodayActivity bundles the arrival and departure lists for the front
// desk dashboard.
func (rc *ReportController) GetTodayActivity(c *gin.Context) {
	checkIns, err := rc.Reports.TodayCheckIns()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	checkOuts, err := rc.Reports.TodayCheckOuts()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"check_ins":  checkIns,
		"check_outs": checkOuts,
	})
}
