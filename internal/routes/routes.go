package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoicing-backend/internal/handlers"
	"invoicing-backend/internal/repository"
	"invoicing-backend/internal/services/billing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	companyRepo := repository.NewCompanyRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	industryRepo := repository.NewIndustryRepository(db)

	billingService := billing.NewService(db)

	companyHandler := handler.NewCompanyHandler(companyRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceRepo, billingService)
	industryHandler := handler.NewIndustryHandler(industryRepo)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	companies := r.Group("/companies")
	companies.GET("", companyHandler.List)
	companies.GET("/:code", companyHandler.Get)
	companies.POST("", companyHandler.Create)
	companies.PATCH("/:code", companyHandler.Update)
	companies.DELETE("/:code", companyHandler.Delete)

	invoices := r.Group("/invoices")
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.POST("", invoiceHandler.Create)
	invoices.PATCH("/:id", invoiceHandler.UpdateAmount)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)

	industries := r.Group("/industries")
	industries.GET("", industryHandler.List)
	industries.POST("", industryHandler.Create)
	industries.POST("/join", industryHandler.Join)
}
