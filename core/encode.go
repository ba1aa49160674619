package core

import "github.com/huangsam/studentrisk/schema"

// LabelCodec is the bijection between risk labels and their dense integer
// codes. Codes are assigned by the fixed vocabulary order in
// schema.RiskLevels, restricted to the labels actually present in the
// training data, so the encoding never depends on row order.
type LabelCodec struct {
	labels []schema.RiskLevel
}

// NewLabelCodec builds a codec over the labels present in the training
// data. Labels outside the fixed vocabulary are ignored.
func NewLabelCodec(present map[schema.RiskLevel]bool) LabelCodec {
	var labels []schema.RiskLevel
	for _, l := range schema.RiskLevels {
		if present[l] {
			labels = append(labels, l)
		}
	}
	return LabelCodec{labels: labels}
}

// codecFromLabels rebuilds a codec from its persisted label slice.
func codecFromLabels(labels []schema.RiskLevel) LabelCodec {
	return LabelCodec{labels: labels}
}

// Encode returns the integer code for a label.
func (c LabelCodec) Encode(l schema.RiskLevel) (int, bool) {
	for code, known := range c.labels {
		if known == l {
			return code, true
		}
	}
	return 0, false
}

// Decode returns the label for an integer code.
func (c LabelCodec) Decode(code int) (schema.RiskLevel, bool) {
	if code < 0 || code >= len(c.labels) {
		return "", false
	}
	return c.labels[code], true
}

// Labels returns the labels in code order.
func (c LabelCodec) Labels() []schema.RiskLevel {
	out := make([]schema.RiskLevel, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of encoded classes.
func (c LabelCodec) Len() int {
	return len(c.labels)
}
