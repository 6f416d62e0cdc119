package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	raw := "Policy  Schedule\r\n\r\nSum   Insured: 5,00,000"

	normalized := NormalizeText(raw)

	assert.Equal(t, "policy schedule\nsum insured: 5,00,000", normalized)
}

func TestNormalizeTextIdempotent(t *testing.T) {
	raw := "HOME   POLICY\r\rvalid  to: 31/12/2026"

	once := NormalizeText(raw)

	assert.Equal(t, once, NormalizeText(once))
}

func TestNormalizeLifeTextStripsCurrencyArtifacts(t *testing.T) {
	assert.Equal(t, "sum assured 5,00,000", NormalizeLifeText("Sum Assured ₹5,00,000"))
	assert.Equal(t, "sum assured 5,00,000", NormalizeLifeText("Sum Assured â‚¹5,00,000"))
	assert.Equal(t, "benefit 200000", NormalizeLifeText("Benefit $200000"))
}
