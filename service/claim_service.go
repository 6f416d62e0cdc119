package service

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/Aashish23092/ocr-claim-validation/client"
	"github.com/Aashish23092/ocr-claim-validation/dto"
	"github.com/Aashish23092/ocr-claim-validation/utils"
)

// OCREngine is the external transcription collaborator. The transcript is
// best effort; field extraction deals with the noise.
type OCREngine interface {
	ExtractTextContext(ctx context.Context, filePath string, opts client.OCROptions) (string, error)
}

// QRDecoder reads QR payloads from document images. Optional; a nil decoder
// just disables the policy-number backfill.
type QRDecoder interface {
	DecodeFile(filePath string) (string, error)
}

// ClaimService runs a staged policy document through transcription, field
// extraction and the per-policy-type rule set. It holds no per-request
// state; every record is built fresh and discarded with the response.
type ClaimService struct {
	ocr        OCREngine
	qr         QRDecoder
	pdf        PDFProcessor
	ocrTimeout time.Duration
	fallback   utils.CoverageFallback
}

func NewClaimService(ocr OCREngine, qr QRDecoder, pdf PDFProcessor, ocrTimeout time.Duration) *ClaimService {
	return &ClaimService{
		ocr:        ocr,
		qr:         qr,
		pdf:        pdf,
		ocrTimeout: ocrTimeout,
		fallback:   utils.DefaultCoverageFallback,
	}
}

// SetCoverageFallback overrides the no-data coverage estimate used for home
// documents whose sums could not be read at all.
func (s *ClaimService) SetCoverageFallback(f utils.CoverageFallback) {
	s.fallback = f
}

// policyNumberShape is what an insurer-issued identifier looks like after
// normalization.
var policyNumberShape = regexp.MustCompile(`^[a-z0-9/-]{5,}$`)

// ProcessClaim validates a claim against the staged document at filePath.
// The service owns the staged file and removes it exactly once before
// returning, on every path. Decision outcomes, including rejections, are
// returned as results; only transcription and I/O failures are errors.
func (s *ClaimService) ProcessClaim(ctx context.Context, filePath string, policyType dto.PolicyType, claim dto.ClaimRequest) (*dto.ValidationResponse, error) {
	defer func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove staged file %s: %v", filePath, err)
		}
	}()

	text, err := s.transcribe(ctx, filePath, policyType)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	switch policyType {
	case dto.PolicyHome:
		rec := utils.ParseHomeData(text)
		if rec.PolicyNumber == "" {
			rec.PolicyNumber = s.policyNumberFromQR(filePath)
		}
		if s.fallback.Needed(rec) {
			log.Println("No usable sums extracted, applying coverage fallback")
			s.fallback.Apply(&rec)
		}
		validation := utils.ValidateHomeClaim(rec, claim)
		return &dto.ValidationResponse{Success: true, Data: rec, Validation: validation}, nil

	case dto.PolicyLife:
		rec := utils.ParseLifeData(text)
		if rec.PolicyNumber == "" {
			rec.PolicyNumber = s.policyNumberFromQR(filePath)
		}
		validation := utils.ValidateLifeClaim(rec, claim)
		return &dto.ValidationResponse{Success: true, Data: rec, Validation: validation}, nil

	case dto.PolicyVehicle:
		rec := utils.ParseVehicleData(text)
		validation := utils.ValidateVehicleClaim(rec, claim)
		return &dto.ValidationResponse{Success: true, Data: rec, Validation: validation}, nil
	}

	return nil, fmt.Errorf("unknown policy type: %s", policyType)
}

// transcribe produces the raw text of the staged document, routing PDFs
// through their text layer and everything else straight to OCR. The OCR
// call is the one blocking external step per request and is bounded by the
// configured timeout.
func (s *ClaimService) transcribe(ctx context.Context, filePath string, policyType dto.PolicyType) (string, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".pdf") {
		return s.transcribePDF(ctx, filePath, policyType)
	}

	octx, cancel := context.WithTimeout(ctx, s.ocrTimeout)
	defer cancel()
	return s.ocr.ExtractTextContext(octx, filePath, ocrOptionsFor(policyType))
}

// transcribePDF prefers the embedded text layer; a thin or absent layer
// means a scanned schedule, so the page images are extracted and OCR'd
// instead.
func (s *ClaimService) transcribePDF(ctx context.Context, filePath string, policyType dto.PolicyType) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	text, err := s.pdf.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filePath, err)
	}
	if len(strings.TrimSpace(text)) >= 20 {
		return text, nil
	}

	images, err := s.pdf.ExtractImages(data)
	if err != nil {
		return "", fmt.Errorf("scanned pdf image extraction failed: %w", err)
	}
	if len(images) == 0 {
		return "", fmt.Errorf("pdf has neither a text layer nor page images")
	}

	var combined strings.Builder
	for i, img := range images {
		pagePath, err := savePageImage(img)
		if err != nil {
			log.Printf("Failed to stage page %d for OCR: %v", i+1, err)
			continue
		}

		octx, cancel := context.WithTimeout(ctx, s.ocrTimeout)
		pageText, err := s.ocr.ExtractTextContext(octx, pagePath, ocrOptionsFor(policyType))
		cancel()
		os.Remove(pagePath)

		if err != nil {
			log.Printf("OCR failed for page %d of %s: %v", i+1, filePath, err)
			continue
		}
		combined.WriteString(pageText)
		combined.WriteString("\n")
	}

	if strings.TrimSpace(combined.String()) == "" {
		return "", fmt.Errorf("ocr produced no text for pdf")
	}
	return combined.String(), nil
}

// policyNumberFromQR backfills a policy number from the document's QR
// sticker when heuristic extraction came up empty. Failures just mean no
// backfill.
func (s *ClaimService) policyNumberFromQR(filePath string) string {
	if s.qr == nil {
		return ""
	}
	payload, err := s.qr.DecodeFile(filePath)
	if err != nil {
		return ""
	}
	payload = strings.ToLower(strings.TrimSpace(payload))
	if policyNumberShape.MatchString(payload) {
		log.Printf("Policy number backfilled from QR code")
		return payload
	}
	return ""
}

// ocrOptionsFor returns the Tesseract tuning for a document layout. Home
// schedules are dense tables, so a single-block segmentation with a
// restricted character set reads the stamped sums best; life documents
// only need the symbol noise suppressed.
func ocrOptionsFor(policyType dto.PolicyType) client.OCROptions {
	switch policyType {
	case dto.PolicyHome:
		return client.OCROptions{
			Language:    "eng",
			PageSegMode: gosseract.PSM_SINGLE_BLOCK,
			Whitelist:   "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ:/.- ,",
		}
	case dto.PolicyLife:
		return client.OCROptions{
			Language:  "eng",
			Whitelist: "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ./:- ",
		}
	default:
		return client.OCROptions{Language: "eng"}
	}
}

// savePageImage stages a rasterized PDF page as a temporary PNG for OCR.
func savePageImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "claim-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}

	return tempFile.Name(), nil
}
