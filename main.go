package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/ocr-claim-validation/client"
	"github.com/Aashish23092/ocr-claim-validation/config"
	"github.com/Aashish23092/ocr-claim-validation/handler"
	"github.com/Aashish23092/ocr-claim-validation/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 resolves its models through this env var
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", cfg.TesseractDataPath)

	// Initialize clients
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()
	qrClient := client.NewQRClient()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	claimService := service.NewClaimService(tesseractClient, qrClient, pdfProcessor, cfg.OCRTimeout)

	// Initialize handler layer
	claimHandler := handler.NewClaimHandler(claimService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Insurance Claim Validation",
		})
	})

	// One process serves every policy type; the routes dispatch into the
	// shared parser/validator set.
	router.POST("/validate-home", claimHandler.ValidateHome)
	router.POST("/validate-life", claimHandler.ValidateLife)
	router.POST("/validate-vehicle", claimHandler.ValidateVehicle)

	// Start server
	log.Printf("Starting Insurance Claim Validation Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
