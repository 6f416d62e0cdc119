package utils

import (
	"fmt"

	"github.com/Aashish23092/ocr-claim-validation/dto"
)

// Value shapes for home policy documents.
const (
	homeAmountPattern  = `[0-9.,]{5,}`
	homeIDPattern      = `[a-z0-9/-]+`
	homeAddressPattern = `[a-z0-9,\s]{10,}`
	homeDatePattern    = `[0-9/.-]+`
)

// ParseHomeData extracts a structured home policy record from a raw OCR
// transcript. Sums are anchored on their printed labels; when none of the
// three is found, the largest standalone amounts in the document stand in
// (largest as total and building, second largest as contents).
func ParseHomeData(rawText string) dto.HomeRecord {
	text := NormalizeText(rawText)

	rec := dto.HomeRecord{
		PolicyNumber: ExtractNearLabel(text,
			[]string{"policy number", "policy no"}, homeIDPattern, DefaultLabelWindow),
		PropertyAddress: ExtractNearLabel(text,
			[]string{"property address", "risk location", "address"}, homeAddressPattern, DefaultLabelWindow),
		ValidTo: ExtractNearLabel(text,
			[]string{"valid to", "expiry", "end date"}, homeDatePattern, DefaultLabelWindow),
		BuildingSum: ParseSmartCurrency(ExtractNearLabel(text,
			[]string{"building sum", "structure"}, homeAmountPattern, DefaultLabelWindow)),
		ContentSum: ParseSmartCurrency(ExtractNearLabel(text,
			[]string{"content sum", "contents", "furniture"}, homeAmountPattern, DefaultLabelWindow)),
		TotalSum: ParseSmartCurrency(ExtractNearLabel(text,
			[]string{"total sum insured", "sum insured"}, homeAmountPattern, DefaultLabelWindow)),
	}

	if rec.BuildingSum == 0 && rec.ContentSum == 0 && rec.TotalSum == 0 {
		amounts := StandaloneAmounts(text)
		if len(amounts) > 0 {
			rec.TotalSum = amounts[0]
			rec.BuildingSum = amounts[0]
		}
		if len(amounts) > 1 {
			rec.ContentSum = amounts[1]
		}
	}

	return rec
}

// CoverageFallback is the no-data coverage estimate substituted when a home
// document yields no usable sums at all, so that validation still has a
// limit to compare against. The figures are not read from the document and
// are not authoritative; every record they touch is marked FallbackApplied.
// Override per service instance to tune or effectively disable it.
type CoverageFallback struct {
	TotalSum   int
	ContentSum int
}

// DefaultCoverageFallback assumes a mid-range urban home policy:
// 15 lakh structure cover with 5 lakh for contents.
var DefaultCoverageFallback = CoverageFallback{TotalSum: 1500000, ContentSum: 500000}

// Needed reports whether the record qualifies for the fallback: all three
// sums exactly zero after both labelled and standalone-number extraction.
func (f CoverageFallback) Needed(rec dto.HomeRecord) bool {
	return rec.TotalSum == 0 && rec.BuildingSum == 0 && rec.ContentSum == 0
}

// Apply overwrites the record's sums with the estimate and marks it.
func (f CoverageFallback) Apply(rec *dto.HomeRecord) {
	rec.TotalSum = f.TotalSum
	rec.BuildingSum = f.TotalSum
	rec.ContentSum = f.ContentSum
	rec.FallbackApplied = true
}

// ValidateHomeClaim applies the home policy rule set. Every rule evaluates;
// a later rule may overwrite the status but all recorded issues persist, so
// a rejection can carry earlier manual-review notes with it.
func ValidateHomeClaim(rec dto.HomeRecord, claim dto.ClaimRequest) dto.Decision {
	decision := dto.NewDecision()

	if rec.PolicyNumber == "" && rec.PropertyAddress == "" {
		decision.Flag(dto.StatusManualReview, "Policy or property identity not detected.")
	}

	limit := rec.TotalSum
	if limit == 0 {
		limit = rec.BuildingSum
	}
	if claim.Type == "content" && rec.ContentSum > 0 {
		limit = rec.ContentSum
	}

	if limit == 0 {
		decision.Flag(dto.StatusManualReview, "Coverage amount not available.")
	} else if claim.Amount > float64(limit) {
		decision.Flag(dto.StatusRejected,
			fmt.Sprintf("Claim (%v) exceeds coverage limit (%d).", claim.Amount, limit))
	}

	return decision
}
