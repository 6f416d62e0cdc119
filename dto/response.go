package dto

// ValidationResponse is the success envelope for all validation endpoints.
// Data holds the policy-type-specific record (HomeRecord, LifeRecord or
// VehicleRecord). Decision outcomes, including REJECTED, are domain results
// and always travel in a 200 response.
type ValidationResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Validation Decision    `json:"validation"`
}

// ErrorResponse is the error envelope for 400/500 responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
