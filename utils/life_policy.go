package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aashish23092/ocr-claim-validation/dto"
)

// sumAssuredTolerance allows a claim to exceed the sum assured by 10%
// before rejection, covering accrued bonuses printed elsewhere on the
// document.
const sumAssuredTolerance = 1.1

// ParseLifeData extracts a structured life policy record from a raw OCR
// transcript. Life documents rarely keep label and value on one line, so
// fields are anchored in token space rather than by character proximity.
// The sum assured falls back to the largest standalone number in the
// document when no labelled amount is readable; the premium has no
// fallback.
func ParseLifeData(rawText string) dto.LifeRecord {
	text := NormalizeLifeText(rawText)

	sumAssured := ParseDigits(ExtractAfterKeywords(text,
		[]string{"coverage", "amount", "assured", "benefit"}, DefaultTokenWindow))
	if sumAssured == 0 {
		sumAssured = LargestStandaloneNumber(text)
	}

	return dto.LifeRecord{
		PolicyNumber: ExtractAfterKeywords(text,
			[]string{"number", "no", "id"}, DefaultTokenWindow),
		PolicyName: ExtractAfterKeywords(text,
			[]string{"policy", "plan"}, DefaultTokenWindow),
		LifeAssured: ExtractAfterKeywords(text,
			[]string{"name"}, DefaultTokenWindow),
		Nominee: ExtractAfterKeywords(text,
			[]string{"nominee", "beneficiary"}, DefaultTokenWindow),
		StartDate: ExtractAfterKeywords(text,
			[]string{"start", "commencement", "risk"}, DefaultTokenWindow),
		MaturityDate: ExtractAfterKeywords(text,
			[]string{"maturity", "expiry"}, DefaultTokenWindow),
		SumAssuredVal: sumAssured,
		PremiumVal: ParseDigits(ExtractAfterKeywords(text,
			[]string{"premium", "installment"}, DefaultTokenWindow)),
	}
}

// ValidateLifeClaim applies the life policy rule set. Missing policy
// identity rejects immediately and skips every other rule; the remaining
// rules all evaluate and accumulate, with the last fired rule deciding the
// final status.
func ValidateLifeClaim(rec dto.LifeRecord, claim dto.ClaimRequest) dto.Decision {
	decision := dto.NewDecision()

	if rec.PolicyNumber == "" && rec.PolicyName == "" {
		decision.Flag(dto.StatusRejected, "Policy identification missing.")
		return decision
	}

	if rec.LifeAssured == "" {
		decision.Flag(dto.StatusManualReview, "Life assured not detected.")
	}

	claimant := strings.ToLower(strings.TrimSpace(claim.ClaimantName))
	if claimant != "" && rec.Nominee != "" && !strings.Contains(rec.Nominee, claimant) {
		decision.Flag(dto.StatusManualReview,
			fmt.Sprintf("Claimant '%s' does not match nominee '%s'.", claimant, rec.Nominee))
	}

	if maturity, ok := ParsePolicyDate(rec.MaturityDate); ok && maturity.Before(time.Now()) {
		decision.Flag(dto.StatusRejected, "Policy already matured.")
	}

	if rec.SumAssuredVal > 0 && claim.Amount > 0 {
		if claim.Amount > float64(rec.SumAssuredVal)*sumAssuredTolerance {
			decision.Flag(dto.StatusRejected,
				fmt.Sprintf("Claim (%v) exceeds sum assured (%d).", claim.Amount, rec.SumAssuredVal))
		}
	} else {
		decision.Flag(dto.StatusManualReview, "Sum assured not detected.")
	}

	return decision
}
