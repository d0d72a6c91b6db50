package analysis

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
	"github.com/projectsentry/narrative-analyzer/internal/telemetry"
)

const defaultTopDriverCount = 5

// Config holds analyzer settings.
type Config struct {
	// TextFields is the ordered candidate list for text-field resolution.
	// Empty means domain.DefaultTextFields.
	TextFields []string
	// TopDriverCount caps the top-drivers list. Zero means the default of 5.
	TopDriverCount int
	// Clock supplies evaluation time for bot scoring. Nil means time.Now.
	Clock func() time.Time
}

// Analyzer runs one full detection pass over a record set: sentiment labels,
// bot scores, mention graph, and the aggregate report. A run is single
// threaded and bounded; there is no state shared between runs.
type Analyzer struct {
	logger     logger.Logger
	telemetry  *telemetry.Provider
	estimator  *BotScoreEstimator
	textFields []string
	topDrivers int
}

// Report is the output of one detection run, consumed by the presentation
// layer.
type Report struct {
	// Records are the caller's records, copied and augmented with sentiment
	// and (where account metadata exists) bot_score fields.
	Records []domain.Record `json:"records"`
	// TextField is the resolved text field name; empty when the set had no
	// usable text field and every record was labeled unknown.
	TextField   string                        `json:"text_field,omitempty"`
	LabelCounts map[domain.NarrativeLabel]int `json:"label_counts"`
	Threat      ThreatAssessment              `json:"threat"`
	KeywordHits []KeywordHit                  `json:"keyword_hits,omitempty"`
	TopDrivers  []domain.Record               `json:"top_drivers,omitempty"`
	Graph       *MentionGraph                 `json:"graph"`

	ProcessingTimeMs int64     `json:"processing_time_ms"`
	AnalyzedAt       time.Time `json:"analyzed_at"`
}

// NewAnalyzer creates an analyzer. The telemetry provider may be nil.
func NewAnalyzer(log logger.Logger, tp *telemetry.Provider, cfg Config) *Analyzer {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	topDrivers := cfg.TopDriverCount
	if topDrivers == 0 {
		topDrivers = defaultTopDriverCount
	}
	return &Analyzer{
		logger:     log,
		telemetry:  tp,
		estimator:  NewBotScoreEstimatorWithClock(log, clock),
		textFields: cfg.TextFields,
		topDrivers: topDrivers,
	}
}

// Run executes one detection run. keywords drives sentiment classification;
// searchTerms drives the keyword-hit statistics and defaults to the anti
// list when empty. The input record set is never mutated. An empty record
// set yields an empty report, not an error.
func (a *Analyzer) Run(ctx context.Context, records []domain.Record, keywords domain.KeywordSet, searchTerms []string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	if a.telemetry != nil {
		var span trace.Span
		ctx, span = a.telemetry.StartRun(ctx, len(records))
		defer span.End()
	}

	a.logger.Debug("starting detection run",
		logger.Int("records", len(records)),
		logger.Int("pro_terms", len(keywords.Pro)),
		logger.Int("anti_terms", len(keywords.Anti)))

	work := domain.CloneRecords(records)

	// 1. Sentiment classification
	classifier := NewSentimentClassifier(a.logger, keywords, a.textFields)
	labels, textField := classifier.Classify(work)

	labelCounts := make(map[domain.NarrativeLabel]int, 4)
	for i, rec := range work {
		rec[domain.FieldSentiment] = string(labels[i])
		labelCounts[labels[i]]++
		if a.telemetry != nil {
			a.telemetry.RecordLabel(string(labels[i]))
		}
	}
	if textField == "" && a.telemetry != nil {
		a.telemetry.RecordNoTextField()
	}

	// 2. Bot scoring; records without account metadata keep no bot_score
	// field, which is the caller's signal that the estimator could not run.
	for _, rec := range work {
		score, ok := a.estimator.Score(rec)
		if !ok {
			continue
		}
		rec[domain.FieldBotScore] = score
		if a.telemetry != nil {
			a.telemetry.RecordBotScore(score)
		}
	}

	// 3. Mention graph
	graph := BuildMentionGraph(work, textField, a.logger)
	if a.telemetry != nil {
		a.telemetry.RecordGraph(graph.NodeCount(), graph.EdgeCount())
	}

	// 4. Aggregates
	threat := AssessThreat(labels)
	if len(searchTerms) == 0 {
		searchTerms = keywords.Anti
	}
	hits := CountKeywordHits(work, labels, textField, searchTerms)
	drivers := TopAntiDrivers(work, labels, a.topDrivers)

	duration := time.Since(start)
	if a.telemetry != nil {
		a.telemetry.RecordRun(duration, len(work), threat.Level)
	}

	a.logger.Info("detection run complete",
		logger.Int("records", len(work)),
		logger.String("text_field", textField),
		logger.String("threat_level", threat.Level),
		logger.Float64("anti_share_pct", threat.AntiSharePct),
		logger.Int("graph_nodes", graph.NodeCount()),
		logger.Int("graph_edges", graph.EdgeCount()),
		logger.Duration("duration", duration))

	return &Report{
		Records:          work,
		TextField:        textField,
		LabelCounts:      labelCounts,
		Threat:           threat,
		KeywordHits:      hits,
		TopDrivers:       drivers,
		Graph:            graph,
		ProcessingTimeMs: duration.Milliseconds(),
		AnalyzedAt:       start.UTC(),
	}, nil
}
