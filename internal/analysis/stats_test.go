//nolint:testpackage // Testing internal analysis requires same package access
package analysis

import (
	"testing"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
)

func labelsOf(labels ...domain.NarrativeLabel) []domain.NarrativeLabel {
	return labels
}

func TestAssessThreat_Levels(t *testing.T) {
	tests := []struct {
		name      string
		labels    []domain.NarrativeLabel
		wantLevel string
		wantShare float64
	}{
		{
			name:      "empty set is low at zero",
			labels:    nil,
			wantLevel: domain.ThreatLow,
			wantShare: 0,
		},
		{
			name: "no anti content",
			labels: labelsOf(domain.LabelPro, domain.LabelNeutral,
				domain.LabelNeutral),
			wantLevel: domain.ThreatLow,
			wantShare: 0,
		},
		{
			name: "twenty percent is still low",
			labels: labelsOf(domain.LabelAnti, domain.LabelNeutral,
				domain.LabelNeutral, domain.LabelNeutral, domain.LabelNeutral),
			wantLevel: domain.ThreatLow,
			wantShare: 20,
		},
		{
			name: "above twenty percent is moderate",
			labels: labelsOf(domain.LabelAnti, domain.LabelNeutral,
				domain.LabelNeutral),
			wantLevel: domain.ThreatModerate,
			wantShare: 100.0 / 3.0,
		},
		{
			name: "forty percent is moderate",
			labels: labelsOf(domain.LabelAnti, domain.LabelAnti,
				domain.LabelNeutral, domain.LabelNeutral, domain.LabelPro),
			wantLevel: domain.ThreatModerate,
			wantShare: 40,
		},
		{
			name: "above forty percent is high",
			labels: labelsOf(domain.LabelAnti, domain.LabelAnti,
				domain.LabelAnti, domain.LabelNeutral, domain.LabelPro),
			wantLevel: domain.ThreatHigh,
			wantShare: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessThreat(tt.labels)
			if got.Level != tt.wantLevel {
				t.Errorf("level = %s, want %s", got.Level, tt.wantLevel)
			}
			if diff := got.AntiSharePct - tt.wantShare; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("share = %v, want %v", got.AntiSharePct, tt.wantShare)
			}
		})
	}
}

func TestCountKeywordHits_WordBoundary(t *testing.T) {
	records := []domain.Record{
		{domain.FieldTweetText: "boycott india today, india tomorrow"},
		{domain.FieldTweetText: "greetings from endia"},
		{domain.FieldTweetText: "proud of india"}, // not anti-labeled, excluded
	}
	labels := labelsOf(domain.LabelAnti, domain.LabelAnti, domain.LabelPro)

	hits := CountKeywordHits(records, labels, domain.FieldTweetText,
		[]string{"india", "boycott india", "kashmir"})

	byKeyword := make(map[string]int, len(hits))
	for _, h := range hits {
		byKeyword[h.Keyword] = h.Occurrences
	}

	// "india" appears twice in anti content as a word; the "india" inside
	// "endia" must not count (boundary-anchored, unlike sentiment matching).
	if byKeyword["india"] != 2 {
		t.Errorf(`hits["india"] = %d, want 2`, byKeyword["india"])
	}
	if byKeyword["boycott india"] != 1 {
		t.Errorf(`hits["boycott india"] = %d, want 1`, byKeyword["boycott india"])
	}
	if _, present := byKeyword["kashmir"]; present {
		t.Error("zero-hit keywords must be omitted")
	}
}

func TestCountKeywordHits_SortedByCountDesc(t *testing.T) {
	records := []domain.Record{
		{domain.FieldTweetText: "free kashmir free kashmir boycott india"},
	}
	labels := labelsOf(domain.LabelAnti)

	hits := CountKeywordHits(records, labels, domain.FieldTweetText,
		[]string{"boycott india", "free kashmir"})

	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].Keyword != "free kashmir" || hits[0].Occurrences != 2 {
		t.Errorf("hits[0] = %+v, want free kashmir x2", hits[0])
	}
}

func TestCountKeywordHits_NoAntiContent(t *testing.T) {
	records := []domain.Record{
		{domain.FieldTweetText: "boycott india"},
	}
	labels := labelsOf(domain.LabelNeutral)

	if hits := CountKeywordHits(records, labels, domain.FieldTweetText, []string{"india"}); hits != nil {
		t.Errorf("expected no hits, got %v", hits)
	}
}

func TestCountKeywordHits_NoTextField(t *testing.T) {
	records := []domain.Record{{domain.FieldIdentity: "Alice"}}
	labels := labelsOf(domain.LabelUnknown)

	if hits := CountKeywordHits(records, labels, "", []string{"india"}); hits != nil {
		t.Errorf("expected no hits without a text field, got %v", hits)
	}
}

func TestTopAntiDrivers_OrderedByEngagement(t *testing.T) {
	records := []domain.Record{
		{domain.FieldIdentity: "a", domain.FieldEngagement: 10},
		{domain.FieldIdentity: "b", domain.FieldEngagement: 500},
		{domain.FieldIdentity: "c"}, // no engagement ranks as zero
		{domain.FieldIdentity: "d", domain.FieldEngagement: 40},
	}
	labels := labelsOf(domain.LabelAnti, domain.LabelAnti, domain.LabelAnti, domain.LabelNeutral)

	drivers := TopAntiDrivers(records, labels, 2)

	if len(drivers) != 2 {
		t.Fatalf("drivers = %d, want 2", len(drivers))
	}
	if drivers[0].Text(domain.FieldIdentity) != "b" {
		t.Errorf("drivers[0] = %s, want b", drivers[0].Text(domain.FieldIdentity))
	}
	if drivers[1].Text(domain.FieldIdentity) != "a" {
		t.Errorf("drivers[1] = %s, want a", drivers[1].Text(domain.FieldIdentity))
	}
}

func TestTopAntiDrivers_EmptyResult(t *testing.T) {
	records := []domain.Record{{domain.FieldIdentity: "a"}}
	labels := labelsOf(domain.LabelNeutral)

	if drivers := TopAntiDrivers(records, labels, 5); len(drivers) != 0 {
		t.Errorf("expected no drivers, got %d", len(drivers))
	}
}
