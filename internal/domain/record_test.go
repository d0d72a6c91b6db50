//nolint:testpackage // Testing internal domain requires same package access
package domain

import (
	"testing"
	"time"
)

func TestRecord_Has(t *testing.T) {
	rec := Record{"present": "x", "nil_value": nil}

	if !rec.Has("present") {
		t.Error("Has should report present fields")
	}
	if rec.Has("nil_value") {
		t.Error("Has should treat nil values as absent")
	}
	if rec.Has("missing") {
		t.Error("Has should report missing fields as absent")
	}
}

func TestRecord_Text(t *testing.T) {
	rec := Record{"s": "hello", "n": 42}

	if got := rec.Text("s"); got != "hello" {
		t.Errorf("Text = %q, want hello", got)
	}
	if got := rec.Text("n"); got != "" {
		t.Errorf("Text on non-string = %q, want empty", got)
	}
	if got := rec.Text("missing"); got != "" {
		t.Errorf("Text on missing = %q, want empty", got)
	}
}

func TestRecord_Int(t *testing.T) {
	rec := Record{
		"int":     7,
		"int64":   int64(8),
		"float64": 9.6,
		"string":  "10",
	}

	tests := []struct {
		field  string
		want   int
		wantOK bool
	}{
		{"int", 7, true},
		{"int64", 8, true},
		{"float64", 9, true},
		{"string", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		got, ok := rec.Int(tt.field)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Int(%s) = %d,%v, want %d,%v", tt.field, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRecord_Float(t *testing.T) {
	rec := Record{"f": 1.5, "i": 2, "i64": int64(3), "s": "4"}

	if got, ok := rec.Float("f"); !ok || got != 1.5 {
		t.Errorf("Float(f) = %v,%v", got, ok)
	}
	if got, ok := rec.Float("i"); !ok || got != 2 {
		t.Errorf("Float(i) = %v,%v", got, ok)
	}
	if got, ok := rec.Float("i64"); !ok || got != 3 {
		t.Errorf("Float(i64) = %v,%v", got, ok)
	}
	if _, ok := rec.Float("s"); ok {
		t.Error("Float should reject strings")
	}
}

func TestRecord_Time(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rec := Record{
		"native": now,
		"rfc":    "2025-06-15T12:00:00Z",
		"bad":    "15/06/2025",
		"num":    1750000000,
	}

	if got, ok := rec.Time("native"); !ok || !got.Equal(now) {
		t.Errorf("Time(native) = %v,%v", got, ok)
	}
	if got, ok := rec.Time("rfc"); !ok || !got.Equal(now) {
		t.Errorf("Time(rfc) = %v,%v", got, ok)
	}
	if _, ok := rec.Time("bad"); ok {
		t.Error("Time should reject non-RFC3339 strings")
	}
	if _, ok := rec.Time("num"); ok {
		t.Error("Time should reject numeric values")
	}
}

func TestRecord_Clone(t *testing.T) {
	original := Record{FieldIdentity: "alice", FieldEngagement: 10}
	clone := original.Clone()

	clone[FieldSentiment] = "anti"
	clone[FieldEngagement] = 99

	if original.Has(FieldSentiment) {
		t.Error("writing to the clone must not touch the original")
	}
	if v, _ := original.Int(FieldEngagement); v != 10 {
		t.Errorf("original engagement = %d, want 10", v)
	}
}

func TestCloneRecords(t *testing.T) {
	records := []Record{
		{FieldIdentity: "alice"},
		{FieldIdentity: "bob"},
	}
	clones := CloneRecords(records)

	if len(clones) != 2 {
		t.Fatalf("clones = %d, want 2", len(clones))
	}
	clones[0][FieldBotScore] = 5
	if records[0].Has(FieldBotScore) {
		t.Error("writing to a clone must not touch the source set")
	}
}

func TestRecord_HasAccountMetadata(t *testing.T) {
	full := Record{
		FieldAccountCreatedAt: time.Now(),
		FieldFollowerCount:    100,
		FieldFollowingCount:   50,
		FieldVerified:         true,
	}
	if !full.HasAccountMetadata() {
		t.Error("complete metadata should be detected")
	}

	for _, field := range []string{
		FieldAccountCreatedAt, FieldFollowerCount, FieldFollowingCount, FieldVerified,
	} {
		partial := full.Clone()
		delete(partial, field)
		if partial.HasAccountMetadata() {
			t.Errorf("missing %s should fail the metadata check", field)
		}
	}

	badType := full.Clone()
	badType[FieldAccountCreatedAt] = "yesterday"
	if badType.HasAccountMetadata() {
		t.Error("unparseable timestamp should fail the metadata check")
	}
}
