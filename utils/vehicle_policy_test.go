package utils

import (
	"testing"

	"github.com/Aashish23092/ocr-claim-validation/dto"
	"github.com/stretchr/testify/assert"
)

func TestParseVehicleData(t *testing.T) {
	text := `
		Motor Package Policy
		Registration No: MH12AB1234
		Chassis No: MA3EYD32S00123456
		Engine No: K12MN7654321
		Valid From: 01/04/2025
		Valid To: 31/03/2026
		IDV: 4,50,000
	`

	rec := ParseVehicleData(text)

	assert.Equal(t, "mh12ab1234", rec.VehicleRegNo)
	assert.Equal(t, "ma3eyd32s00123456", rec.ChassisNo)
	assert.Equal(t, "k12mn7654321", rec.EngineNo)
	assert.Equal(t, "01/04/2025", rec.ValidFrom)
	assert.Equal(t, "31/03/2026", rec.ValidTo)
	assert.Equal(t, 450000, rec.IDVValue)
}

func TestValidateVehicleClaimUnidentifiableVehicleShortCircuits(t *testing.T) {
	decision := ValidateVehicleClaim(dto.VehicleRecord{}, dto.ClaimRequest{Amount: 100000})

	assert.Equal(t, dto.StatusRejected, decision.Status)
	assert.Len(t, decision.Issues, 1)
}

func TestValidateVehicleClaimExpiredPolicy(t *testing.T) {
	rec := dto.VehicleRecord{
		VehicleRegNo: "mh12ab1234",
		ValidTo:      "31/03/2020",
		IDVValue:     450000,
	}

	decision := ValidateVehicleClaim(rec, dto.ClaimRequest{Amount: 100000})

	assert.Equal(t, dto.StatusRejected, decision.Status)
	assert.Contains(t, decision.Issues[0], "expired")
}

func TestValidateVehicleClaimMissingExpiryNeedsReview(t *testing.T) {
	rec := dto.VehicleRecord{VehicleRegNo: "mh12ab1234", IDVValue: 450000}

	decision := ValidateVehicleClaim(rec, dto.ClaimRequest{Amount: 100000})

	assert.Equal(t, dto.StatusManualReview, decision.Status)
}

func TestValidateVehicleClaimUnclearExpiryOnlyNotes(t *testing.T) {
	rec := dto.VehicleRecord{VehicleRegNo: "mh12ab1234", ValidTo: "3l/O3/2026", IDVValue: 450000}

	decision := ValidateVehicleClaim(rec, dto.ClaimRequest{Amount: 100000})

	// Unreadable date adds a note without escalating on its own
	assert.Equal(t, dto.StatusApproved, decision.Status)
	assert.Len(t, decision.Issues, 1)
}

func TestValidateVehicleClaimOverIDV(t *testing.T) {
	rec := dto.VehicleRecord{
		VehicleRegNo: "mh12ab1234",
		ValidTo:      "31/03/2099",
		IDVValue:     450000,
	}

	decision := ValidateVehicleClaim(rec, dto.ClaimRequest{Amount: 600000})

	assert.Equal(t, dto.StatusRejected, decision.Status)
	assert.Contains(t, decision.Issues[0], "450000")
}

func TestValidateVehicleClaimMissingIDVNeedsReview(t *testing.T) {
	rec := dto.VehicleRecord{VehicleRegNo: "mh12ab1234", ValidTo: "31/03/2099"}

	decision := ValidateVehicleClaim(rec, dto.ClaimRequest{Amount: 100000})

	assert.Equal(t, dto.StatusManualReview, decision.Status)
}
