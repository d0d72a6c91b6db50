package analysis

import (
	"time"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
)

// Bot scoring heuristics. Four independent additive signals whose weights
// sum to the cap.
const (
	newAccountMaxAgeDays = 60
	newAccountWeight     = 4

	ratioFollowingFloor = 100
	suspiciousRatio     = 0.1
	ratioWeight         = 3

	lowFollowerCeiling = 10
	lowFollowerWeight  = 2

	unverifiedWeight = 1

	maxBotScore = 10
)

// BotScoreEstimator computes a 0-10 bot-likelihood score from account
// metadata. Only records carrying the full metadata subset (Twitter records)
// can be scored.
type BotScoreEstimator struct {
	logger logger.Logger
	now    func() time.Time
}

// NewBotScoreEstimator creates an estimator evaluating against wall-clock
// UTC time.
func NewBotScoreEstimator(log logger.Logger) *BotScoreEstimator {
	return NewBotScoreEstimatorWithClock(log, time.Now)
}

// NewBotScoreEstimatorWithClock creates an estimator with an injected clock.
// Tests must pin the clock: the account-age heuristic depends on "now".
func NewBotScoreEstimatorWithClock(log logger.Logger, now func() time.Time) *BotScoreEstimator {
	return &BotScoreEstimator{logger: log, now: now}
}

// Score computes the bot score for one record. The second return value is
// false when the record is missing any required account metadata field; the
// score is then 0.
func (e *BotScoreEstimator) Score(rec domain.Record) (int, bool) {
	createdAt, okCreated := rec.Time(domain.FieldAccountCreatedAt)
	followers, okFollowers := rec.Int(domain.FieldFollowerCount)
	following, okFollowing := rec.Int(domain.FieldFollowingCount)
	verified, okVerified := rec.Bool(domain.FieldVerified)

	if !okCreated || !okFollowers || !okFollowing || !okVerified {
		return 0, false
	}

	score := 0

	ageDays := int(e.now().UTC().Sub(createdAt).Hours() / 24)
	if ageDays < newAccountMaxAgeDays {
		score += newAccountWeight
	}

	// following > 100 also keeps the division well defined.
	if following > ratioFollowingFloor && followers > 0 {
		if float64(followers)/float64(following) < suspiciousRatio {
			score += ratioWeight
		}
	}

	if followers < lowFollowerCeiling {
		score += lowFollowerWeight
	}

	if !verified {
		score += unverifiedWeight
	}

	if score > maxBotScore {
		score = maxBotScore
	}
	return score, true
}
