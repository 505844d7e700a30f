package main

import (
	"log"

	"github.com/facturard/dgii-fiscal-service/client"
	"github.com/facturard/dgii-fiscal-service/config"
	"github.com/facturard/dgii-fiscal-service/handler"
	"github.com/facturard/dgii-fiscal-service/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	receiptService := service.NewReceiptService(tesseractClient, pdfProcessor)
	reportService := service.NewReportService(cfg.MaxFileSize)

	// Initialize handler layer
	receiptHandler := handler.NewReceiptHandler(receiptService)
	reportHandler := handler.NewReportHandler(reportService)
	taxpayerHandler := handler.NewTaxpayerHandler()

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "DGII Fiscal Document Service",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		reports := api.Group("/reports")
		{
			reports.POST("/:format/validate", reportHandler.ValidateReport)
		}

		receipts := api.Group("/receipts")
		{
			receipts.POST("/parse", receiptHandler.ParseReceipt)
		}

		api.POST("/taxpayers/validate", taxpayerHandler.ValidateTaxpayer)
		api.POST("/ncf/validate", taxpayerHandler.ValidateNCF)
	}

	// Start server
	log.Printf("Starting DGII Fiscal Document Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
