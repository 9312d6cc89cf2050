package http

import (
	"github.com/gin-gonic/gin"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/handlers"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, recordHandler *handlers.RecordHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks", taskHandler.ListTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.POST("/tasks/:id/comments", taskHandler.AddComment)
		api.POST("/tasks/:id/attachments", taskHandler.AddAttachment)
		api.POST("/tasks/sweep/overdue", taskHandler.SweepOverdue)
		api.POST("/tasks/sweep/fines", taskHandler.ApplyLateFines)

		api.GET("/branches", recordHandler.ListBranches)
		api.GET("/rooms", recordHandler.ListRooms)
		api.GET("/packages", recordHandler.ListPackages)
		api.GET("/complaints", recordHandler.ListComplaints)
		api.POST("/complaints", recordHandler.CreateComplaint)
		api.GET("/bookings", recordHandler.ListBookings)
		api.POST("/bookings", recordHandler.CreateBooking)
		api.GET("/time-entries", recordHandler.ListTimeEntries)
		api.GET("/inventory", recordHandler.ListInventory)
	}
}
