package domain

// NarrativeLabel is the sentiment classification outcome for one record.
type NarrativeLabel string

// Narrative labels. Unknown is assigned only when the whole record set has no
// usable text field.
const (
	LabelPro     NarrativeLabel = "pro"
	LabelAnti    NarrativeLabel = "anti"
	LabelNeutral NarrativeLabel = "neutral"
	LabelUnknown NarrativeLabel = "unknown"
)

// KeywordSet holds the two ordered phrase lists driving sentiment
// classification. Phrases are matched as lowercase substrings.
type KeywordSet struct {
	Pro  []string `json:"pro"`
	Anti []string `json:"anti"`
}

// Threat levels derived from the share of anti-labeled records.
const (
	ThreatLow      = "LOW"
	ThreatModerate = "MODERATE"
	ThreatHigh     = "HIGH"
)
