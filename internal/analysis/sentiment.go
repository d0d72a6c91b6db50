// Package analysis implements the narrative classification and scoring
// engine: sentiment labeling, bot-likelihood scoring, and mention-graph
// construction over a cross-source record set.
package analysis

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
)

// SentimentClassifier assigns a narrative label to each record by comparing
// how many pro phrases versus anti phrases occur in its text. Matching is
// plain substring matching: the phrase lists deliberately contain sub-word
// signal terms (e.g. "endia"), so word boundaries must not be enforced.
type SentimentClassifier struct {
	logger      logger.Logger
	proMatcher  *ahocorasick.Matcher
	antiMatcher *ahocorasick.Matcher
	textFields  []string
}

// NewSentimentClassifier builds the phrase matchers for the given keyword
// set. textFields is the ordered list of candidate text field names; nil
// means domain.DefaultTextFields.
func NewSentimentClassifier(log logger.Logger, keywords domain.KeywordSet, textFields []string) *SentimentClassifier {
	if len(textFields) == 0 {
		textFields = domain.DefaultTextFields
	}
	return &SentimentClassifier{
		logger:      log,
		proMatcher:  buildMatcher(keywords.Pro),
		antiMatcher: buildMatcher(keywords.Anti),
		textFields:  textFields,
	}
}

// buildMatcher normalizes phrases and builds an Aho-Corasick automaton.
// Returns nil when no usable phrases remain; a nil matcher counts zero.
func buildMatcher(phrases []string) *ahocorasick.Matcher {
	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		normalized = append(normalized, p)
	}
	if len(normalized) == 0 {
		return nil
	}
	return ahocorasick.NewStringMatcher(normalized)
}

// ResolveTextField picks the text field for the whole record set: the first
// candidate present with a non-nil value on any record. Resolving once per
// set keeps MissingTextField deterministic instead of varying per record.
func (s *SentimentClassifier) ResolveTextField(records []domain.Record) (string, bool) {
	for _, field := range s.textFields {
		for _, rec := range records {
			if rec.Has(field) {
				return field, true
			}
		}
	}
	return "", false
}

// Label classifies a single text. Pure function of the text and the phrase
// lists the classifier was built with.
func (s *SentimentClassifier) Label(text string) domain.NarrativeLabel {
	lowered := strings.ToLower(text)
	proCount := countPhrases(s.proMatcher, lowered)
	antiCount := countPhrases(s.antiMatcher, lowered)

	switch {
	case antiCount > proCount:
		return domain.LabelAnti
	case proCount > antiCount:
		return domain.LabelPro
	default:
		return domain.LabelNeutral
	}
}

// Classify labels every record in the set. When no candidate text field
// exists anywhere in the set, every record is labeled unknown and the
// returned field name is empty.
func (s *SentimentClassifier) Classify(records []domain.Record) (labels []domain.NarrativeLabel, textField string) {
	labels = make([]domain.NarrativeLabel, len(records))

	textField, ok := s.ResolveTextField(records)
	if !ok {
		for i := range labels {
			labels[i] = domain.LabelUnknown
		}
		s.logger.Warn("no usable text field in record set",
			logger.Strings("candidates", s.textFields),
			logger.Int("records", len(records)))
		return labels, ""
	}

	for i, rec := range records {
		labels[i] = s.Label(rec.Text(textField))
	}
	return labels, textField
}

// countPhrases returns how many distinct phrases occur in the text.
func countPhrases(m *ahocorasick.Matcher, lowered string) int {
	if m == nil {
		return 0
	}
	return len(m.Match([]byte(lowered)))
}
