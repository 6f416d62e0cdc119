package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNearLabelAbsentWhenNoLabelMatches(t *testing.T) {
	text := "nothing of interest on this page"

	value := ExtractNearLabel(text, []string{"sum insured", "coverage limit"}, `[0-9,]{5,}`, 0)

	assert.Empty(t, value)
}

func TestExtractNearLabelFirstOccurrenceGoverns(t *testing.T) {
	text := "sum insured: 100000 revised schedule sum insured: 999999"

	value := ExtractNearLabel(text, []string{"total sum insured", "sum insured"}, `[0-9.,]{5,}`, 0)

	assert.Equal(t, "100000", value)
}

func TestExtractNearLabelRespectsWindow(t *testing.T) {
	text := "sum insured " + strings.Repeat("x", 100) + " 123456"

	value := ExtractNearLabel(text, []string{"sum insured"}, `[0-9,]{5,}`, 0)

	assert.Empty(t, value)
}

func TestExtractNearLabelTriesLabelsInOrder(t *testing.T) {
	text := "structure value 250000 building sum 900000"

	// More specific label first wins even though "structure" appears earlier
	value := ExtractNearLabel(text, []string{"building sum", "structure"}, `[0-9,]{5,}`, 0)

	assert.Equal(t, "900000", value)
}

func TestExtractAfterKeywords(t *testing.T) {
	value := ExtractAfterKeywords("nominee sunita devi relation wife", []string{"nominee", "beneficiary"}, 0)

	assert.Equal(t, "sunita devi relation wife", value)
}

func TestExtractAfterKeywordsShortValueIsAbsent(t *testing.T) {
	assert.Empty(t, ExtractAfterKeywords("name jo", []string{"name"}, 0))
	assert.Empty(t, ExtractAfterKeywords("name", []string{"name"}, 0))
}

func TestExtractAfterKeywordsSkipsLaterKeywordOccurrences(t *testing.T) {
	value := ExtractAfterKeywords("name ravi name kumar", []string{"name"}, 0)

	assert.Equal(t, "ravi kumar", value)
}

func TestExtractAfterKeywordsHonorsMaxWords(t *testing.T) {
	value := ExtractAfterKeywords("plan one two three four", []string{"plan"}, 2)

	assert.Equal(t, "one two", value)
}
