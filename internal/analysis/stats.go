package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
)

// Threat level thresholds: percentage of anti-labeled records in the set.
const (
	threatModerateThresholdPct = 20.0
	threatHighThresholdPct     = 40.0
)

// ThreatAssessment summarizes how much of a record set carries the anti
// narrative.
type ThreatAssessment struct {
	Level        string  `json:"level"`
	AntiSharePct float64 `json:"anti_share_pct"`
}

// AssessThreat derives the threat level from the label distribution. An
// empty record set assesses as LOW at 0%.
func AssessThreat(labels []domain.NarrativeLabel) ThreatAssessment {
	if len(labels) == 0 {
		return ThreatAssessment{Level: domain.ThreatLow}
	}

	anti := 0
	for _, label := range labels {
		if label == domain.LabelAnti {
			anti++
		}
	}
	share := float64(anti) / float64(len(labels)) * 100

	level := domain.ThreatLow
	switch {
	case share > threatHighThresholdPct:
		level = domain.ThreatHigh
	case share > threatModerateThresholdPct:
		level = domain.ThreatModerate
	}
	return ThreatAssessment{Level: level, AntiSharePct: share}
}

// KeywordHit is one keyword's occurrence count within anti-labeled content.
type KeywordHit struct {
	Keyword     string `json:"keyword"`
	Occurrences int    `json:"occurrences"`
}

// CountKeywordHits counts word-boundary, case-insensitive occurrences of
// each keyword across the text of all anti-labeled records. Unlike sentiment
// matching this IS boundary-anchored; it reports where keywords surface, not
// sub-word signals. Keywords with zero hits are omitted; results sort by
// count descending, then keyword for determinism.
func CountKeywordHits(records []domain.Record, labels []domain.NarrativeLabel, textField string, keywords []string) []KeywordHit {
	if textField == "" || len(keywords) == 0 {
		return nil
	}

	var parts []string
	for i, rec := range records {
		if i < len(labels) && labels[i] == domain.LabelAnti {
			parts = append(parts, rec.Text(textField))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	corpus := strings.Join(parts, " ")

	hits := make([]KeywordHit, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			continue
		}
		if n := len(re.FindAllStringIndex(corpus, -1)); n > 0 {
			hits = append(hits, KeywordHit{Keyword: kw, Occurrences: n})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Occurrences != hits[j].Occurrences {
			return hits[i].Occurrences > hits[j].Occurrences
		}
		return hits[i].Keyword < hits[j].Keyword
	})
	return hits
}

// TopAntiDrivers returns the n anti-labeled records with the highest
// engagement, descending. Records without an engagement field rank as zero.
func TopAntiDrivers(records []domain.Record, labels []domain.NarrativeLabel, n int) []domain.Record {
	if n <= 0 {
		return nil
	}

	var drivers []domain.Record
	for i, rec := range records {
		if i < len(labels) && labels[i] == domain.LabelAnti {
			drivers = append(drivers, rec)
		}
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		ei, _ := drivers[i].Float(domain.FieldEngagement)
		ej, _ := drivers[j].Float(domain.FieldEngagement)
		return ei > ej
	})

	if len(drivers) > n {
		drivers = drivers[:n]
	}
	return drivers
}
