// Package domain defines the shared data model for the narrative analyzer.
package domain

import "time"

// Well-known record field names. Source adapters produce records keyed by
// these names; which fields are present depends on the platform.
const (
	// FieldIdentity is the author display name/handle. Required for graph
	// construction.
	FieldIdentity = "identity"

	// FieldTweetText is the platform-primary free-text field.
	FieldTweetText = "tweet_text"

	// FieldTextContent is the fallback free-text field used by non-Twitter
	// adapters (Reddit, YouTube, news).
	FieldTextContent = "text_content"

	// FieldEngagement is a platform-specific aggregate interaction count
	// (likes+retweets, score+comments, views+likes+comments).
	FieldEngagement = "engagement"

	// Account metadata fields, present only on Twitter records.
	FieldAccountCreatedAt = "account_created_at"
	FieldFollowerCount    = "follower_count"
	FieldFollowingCount   = "following_count"
	FieldVerified         = "is_verified"

	// Output fields written by a detection run.
	FieldSentiment = "sentiment"
	FieldBotScore  = "bot_score"
)

// DefaultTextFields is the ordered candidate list used to resolve the text
// column for a record set: the platform-primary field first, then the
// fallback.
var DefaultTextFields = []string{FieldTweetText, FieldTextContent}

// Record is one content item from any source adapter: a mapping from field
// name to value. Adapters are free to include platform-specific fields; the
// analyzer only reads the well-known ones above.
type Record map[string]any

// Has reports whether the field is present with a non-nil value.
func (r Record) Has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// Text returns the field as a string. Missing or non-string values are
// coerced to the empty string.
func (r Record) Text(field string) string {
	s, _ := r[field].(string)
	return s
}

// Int returns the field as an int, accepting the numeric types that JSON
// decoding and adapter code produce.
func (r Record) Int(field string) (int, bool) {
	switch v := r[field].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Float returns the field as a float64, accepting common numeric types.
func (r Record) Float(field string) (float64, bool) {
	switch v := r[field].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the field as a bool.
func (r Record) Bool(field string) (bool, bool) {
	v, ok := r[field].(bool)
	return v, ok
}

// Time returns the field as a time.Time. JSON-decoded records carry
// timestamps as RFC 3339 strings; adapter-built records may use time.Time
// directly.
func (r Record) Time(field string) (time.Time, bool) {
	switch v := r[field].(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clone returns a shallow copy of the record. Each detection run operates on
// its own copies so the caller's record set is never mutated.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CloneRecords copies a record set for a detection run.
func CloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// HasAccountMetadata reports whether the record carries the full account
// metadata subset required by the bot score estimator.
func (r Record) HasAccountMetadata() bool {
	if _, ok := r.Time(FieldAccountCreatedAt); !ok {
		return false
	}
	if _, ok := r.Int(FieldFollowerCount); !ok {
		return false
	}
	if _, ok := r.Int(FieldFollowingCount); !ok {
		return false
	}
	if _, ok := r.Bool(FieldVerified); !ok {
		return false
	}
	return true
}
