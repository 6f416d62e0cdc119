package dto

// ClaimRequest carries the claimant's side of a validation request, taken
// from the form fields that accompany the document upload. Amount defaults
// to 0 when the field is missing or unparsable; Type defaults to "general".
// ClaimantName is only meaningful for life claims.
type ClaimRequest struct {
	Amount       float64
	Type         string
	ClaimantName string
}
