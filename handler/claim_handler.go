package handler

import (
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/ocr-claim-validation/dto"
	"github.com/Aashish23092/ocr-claim-validation/service"
)

type ClaimHandler struct {
	claimService *service.ClaimService
}

func NewClaimHandler(claimService *service.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// ValidateHome handles POST /validate-home
func (h *ClaimHandler) ValidateHome(c *gin.Context) {
	h.validate(c, dto.PolicyHome)
}

// ValidateLife handles POST /validate-life
func (h *ClaimHandler) ValidateLife(c *gin.Context) {
	h.validate(c, dto.PolicyLife)
}

// ValidateVehicle handles POST /validate-vehicle
func (h *ClaimHandler) ValidateVehicle(c *gin.Context) {
	h.validate(c, dto.PolicyVehicle)
}

func (h *ClaimHandler) validate(c *gin.Context, policyType dto.PolicyType) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No image uploaded"})
		return
	}

	log.Printf("Processing %s claim document: %s", policyType, fileHeader.Filename)

	// Stage the upload on disk; the service owns the path from here and
	// deletes it on every path.
	stagedPath, err := stageUpload(c, fileHeader)
	if err != nil {
		log.Printf("Failed to stage upload %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Processing failed"})
		return
	}

	claim := dto.ClaimRequest{
		Amount:       parseAmount(c.PostForm("amount")),
		Type:         claimType(c.PostForm("type")),
		ClaimantName: c.PostForm("claimant_name"),
	}

	response, err := h.claimService.ProcessClaim(c.Request.Context(), stagedPath, policyType, claim)
	if err != nil {
		log.Printf("Claim processing failed for %s: %v", fileHeader.Filename, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Processing failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// stageUpload persists the uploaded document to a temp file, preserving the
// extension so the pipeline can tell PDFs from photos.
func stageUpload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	tempFile, err := os.CreateTemp("", "claim-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return "", err
	}
	tempFile.Close()

	if err := c.SaveUploadedFile(fileHeader, tempFile.Name()); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}
	return tempFile.Name(), nil
}

func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

func claimType(raw string) string {
	if raw == "" {
		return "general"
	}
	return raw
}
