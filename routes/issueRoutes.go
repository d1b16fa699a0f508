package routes

import (
	"civicai-be/controllers"
	"civicai-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the citizen report and operator dashboard routes
func IssueRoutes(r *gin.Engine, reports *controllers.ReportController, issues *controllers.IssueController) {
	api := r.Group("/api")
	{
		api.POST("/report", middlewares.ReportRateLimiter(10), reports.SubmitReport)

		issue := api.Group("/issue")
		{
			issue.GET("", issues.ListIssues)
			issue.GET("/stats", issues.GetStatistics)
			issue.GET("/recent", issues.RecentIssues)
			issue.PATCH("/:id/status", issues.UpdateStatus)
		}
	}
}
