package utils

import (
	"fmt"
	"time"

	"github.com/Aashish23092/ocr-claim-validation/dto"
)

const (
	vehicleIDPattern     = `[a-z0-9]+`
	vehicleModelPattern  = `[a-z0-9 ]+`
	vehicleDatePattern   = `[0-9/.-]+`
	vehicleAmountPattern = `[0-9,]+`
)

// ParseVehicleData extracts a structured motor policy record from a raw OCR
// transcript.
func ParseVehicleData(rawText string) dto.VehicleRecord {
	text := NormalizeText(rawText)

	return dto.VehicleRecord{
		VehicleRegNo: ExtractNearLabel(text,
			[]string{"vehicle no", "registration no", "reg no"}, vehicleIDPattern, DefaultLabelWindow),
		ChassisNo: ExtractNearLabel(text,
			[]string{"chassis no"}, vehicleIDPattern, DefaultLabelWindow),
		EngineNo: ExtractNearLabel(text,
			[]string{"engine no"}, vehicleIDPattern, DefaultLabelWindow),
		MakeModel: ExtractNearLabel(text,
			[]string{"make", "model", "variant"}, vehicleModelPattern, DefaultLabelWindow),
		ValidFrom: ExtractNearLabel(text,
			[]string{"valid from", "period from", "commencing"}, vehicleDatePattern, DefaultLabelWindow),
		ValidTo: ExtractNearLabel(text,
			[]string{"valid to", "period to", "expiry date", "midnight of"}, vehicleDatePattern, DefaultLabelWindow),
		IDVValue: ParseSmartCurrency(ExtractNearLabel(text,
			[]string{"idv", "insured declared value", "sum insured"}, vehicleAmountPattern, DefaultLabelWindow)),
	}
}

// ValidateVehicleClaim applies the motor policy rule set. A vehicle that
// cannot be identified rejects immediately; the expiry and IDV rules then
// accumulate like the home rules do.
func ValidateVehicleClaim(rec dto.VehicleRecord, claim dto.ClaimRequest) dto.Decision {
	decision := dto.NewDecision()

	if rec.VehicleRegNo == "" && rec.ChassisNo == "" {
		decision.Flag(dto.StatusRejected,
			"Cannot identify vehicle (missing registration and chassis numbers).")
		return decision
	}

	if rec.ValidTo == "" {
		decision.Flag(dto.StatusManualReview, "Expiry date not found on document.")
	} else if expiry, ok := ParsePolicyDate(rec.ValidTo); !ok {
		decision.Note("Expiry date format unclear, manual check needed.")
	} else if time.Now().After(expiry) {
		decision.Flag(dto.StatusRejected, fmt.Sprintf("Policy expired on %s.", rec.ValidTo))
	}

	if rec.IDVValue == 0 {
		decision.Flag(dto.StatusManualReview, "Insured declared value not visible on document.")
	} else if claim.Amount > float64(rec.IDVValue) {
		decision.Flag(dto.StatusRejected,
			fmt.Sprintf("Claim (%v) exceeds vehicle IDV (%d).", claim.Amount, rec.IDVValue))
	}

	return decision
}
