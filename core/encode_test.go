package core

import (
	"testing"

	"github.com/huangsam/studentrisk/schema"
	"github.com/stretchr/testify/assert"
)

// TestLabelCodecVocabularyOrder verifies codes follow the fixed vocabulary
// order, not encounter order.
func TestLabelCodecVocabularyOrder(t *testing.T) {
	c := NewLabelCodec(map[schema.RiskLevel]bool{
		schema.FailureRisk: true,
		schema.LowRisk:     true,
		schema.HighRisk:    true,
	})

	assert.Equal(t, []schema.RiskLevel{schema.LowRisk, schema.HighRisk, schema.FailureRisk}, c.Labels())

	code, ok := c.Encode(schema.LowRisk)
	assert.True(t, ok)
	assert.Equal(t, 0, code)

	code, ok = c.Encode(schema.FailureRisk)
	assert.True(t, ok)
	assert.Equal(t, 2, code)

	_, ok = c.Encode(schema.MediumRisk)
	assert.False(t, ok)
}

// TestLabelCodecRoundTrip verifies the encode/decode bijection.
func TestLabelCodecRoundTrip(t *testing.T) {
	present := map[schema.RiskLevel]bool{}
	for _, l := range schema.RiskLevels {
		present[l] = true
	}
	c := NewLabelCodec(present)
	assert.Equal(t, 4, c.Len())

	for _, l := range schema.RiskLevels {
		code, ok := c.Encode(l)
		assert.True(t, ok)
		back, ok := c.Decode(code)
		assert.True(t, ok)
		assert.Equal(t, l, back)
	}

	_, ok := c.Decode(-1)
	assert.False(t, ok)
	_, ok = c.Decode(4)
	assert.False(t, ok)
}

// TestLabelCodecIgnoresUnknownLabels verifies vocabulary enforcement.
func TestLabelCodecIgnoresUnknownLabels(t *testing.T) {
	c := NewLabelCodec(map[schema.RiskLevel]bool{
		schema.MediumRisk:           true,
		schema.RiskLevel("Unknown"): true,
	})
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []schema.RiskLevel{schema.MediumRisk}, c.Labels())
}
