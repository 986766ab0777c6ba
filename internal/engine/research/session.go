// Package research implements the incremental multi-query research session:
// a small state machine that executes caller-supplied search queries one at a
// time across successive invocations and aggregates classified results.
package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anatolykoptev/go_ytresearch/internal/engine"
)

// SearchFunc executes one search query and classifies the results.
// Production wiring uses sources.SearchAndClassify.
type SearchFunc func(ctx context.Context, query string) (engine.ClassifiedVideos, error)

// ErrNoResearch is returned by Continue when no session has been started.
var ErrNoResearch = errors.New("No research in progress")

// State is the full state of one research session. 0 <= CurrentQueryIndex <=
// len(SearchQueries), and len(Results) == CurrentQueryIndex at all times: one
// result per executed query, in query order.
type State struct {
	Topic             string
	SearchQueries     []string
	CurrentQueryIndex int
	Results           []engine.SearchResult
	IsComplete        bool
}

// Session owns the single process-wide research slot. Starting a new research
// discards any prior state; only one research may be in flight at a time.
// The MCP host serializes tool calls, the mutex keeps state sane if it ever
// does not.
type Session struct {
	mu     sync.Mutex
	search SearchFunc
	state  *State
}

// NewSession returns an idle session that runs queries through search.
func NewSession(search SearchFunc) *Session {
	return &Session{search: search}
}

// Active reports whether a research is in flight and not yet complete.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil && !s.state.IsComplete
}

// Progress is the position pair reported with each executed query.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// StepReport is the in-progress envelope returned after executing one query.
type StepReport struct {
	Status           string                  `json:"status"`
	CurrentQuery     string                  `json:"currentQuery"`
	Results          engine.ClassifiedVideos `json:"results"`
	RemainingQueries []string                `json:"remainingQueries"`
	HasMoreQueries   bool                    `json:"hasMoreQueries"`
	Progress         Progress                `json:"progress"`
}

// FinalReport is the complete envelope returned once all queries have run.
type FinalReport struct {
	Status       string                `json:"status"`
	Topic        string                `json:"topic"`
	Results      []engine.SearchResult `json:"results"`
	TotalQueries int                   `json:"totalQueries"`
	TotalVideos  int                   `json:"totalVideos"`
}

// Outcome is the tagged result of one session operation: exactly one of
// Step, Final, or Err is set. Search failures are carried in Err rather than
// panicking or aborting the session.
type Outcome struct {
	Step  *StepReport
	Final *FinalReport
	Err   error
}

// Start begins a fresh research for topic, discarding any prior session, and
// immediately executes the first query. On search failure nothing is
// committed: the session returns to idle.
//
// The caller's boundary validates the query count (2-4); Start itself accepts
// whatever it is given.
func (s *Session) Start(ctx context.Context, topic string, queries []string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine.IncrResearchStarted()
	s.state = &State{
		Topic:         topic,
		SearchQueries: queries,
		Results:       []engine.SearchResult{},
	}
	slog.Info("research started",
		slog.String("topic", topic),
		slog.Int("queries", len(queries)),
	)

	out := s.advance(ctx)
	if out.Err != nil {
		s.state = nil
		engine.IncrResearchFailures()
		slog.Warn("research start failed", slog.String("topic", topic), slog.Any("error", out.Err))
	}
	return out
}

// Continue advances the session by exactly one query. Once all queries have
// executed, it finalizes the session and returns the complete report; further
// calls keep returning that same report. A search failure leaves the cursor
// in place so the failing query is retried by the next call.
func (s *Session) Continue(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return Outcome{Err: ErrNoResearch}
	}
	if s.state.CurrentQueryIndex == len(s.state.SearchQueries) {
		// Idempotent terminal state.
		return Outcome{Final: s.complete()}
	}

	out := s.advance(ctx)
	if out.Err != nil {
		engine.IncrResearchFailures()
		slog.Warn("research step failed",
			slog.Int("index", s.state.CurrentQueryIndex),
			slog.Any("error", out.Err),
		)
	}
	return out
}

// advance executes the pending query and moves the cursor. Caller holds the
// lock. Nothing is committed on failure. When the cursor reaches the end of
// the query list the session finalizes in the same call.
func (s *Session) advance(ctx context.Context) Outcome {
	st := s.state
	query := st.SearchQueries[st.CurrentQueryIndex]

	videos, err := s.search(ctx, query)
	if err != nil {
		return Outcome{Err: fmt.Errorf("search %q: %w", query, err)}
	}

	st.Results = append(st.Results, engine.SearchResult{
		SearchQuery:      query,
		ClassifiedVideos: videos,
	})
	st.CurrentQueryIndex++
	engine.IncrResearchSteps()
	slog.Info("research query executed",
		slog.String("query", query),
		slog.Int("shorts", len(videos.Shorts)),
		slog.Int("long_videos", len(videos.LongVideos)),
		slog.Int("current", st.CurrentQueryIndex),
		slog.Int("total", len(st.SearchQueries)),
	)

	if st.CurrentQueryIndex == len(st.SearchQueries) {
		return Outcome{Final: s.complete()}
	}
	return Outcome{Step: &StepReport{
		Status:           "in_progress",
		CurrentQuery:     query,
		Results:          videos,
		RemainingQueries: append([]string(nil), st.SearchQueries[st.CurrentQueryIndex:]...),
		HasMoreQueries:   true,
		Progress:         Progress{Current: st.CurrentQueryIndex, Total: len(st.SearchQueries)},
	}}
}

// complete marks the session complete and builds the final report. Caller
// holds the lock. Safe to call repeatedly; the report is the same each time.
func (s *Session) complete() *FinalReport {
	st := s.state
	if !st.IsComplete {
		st.IsComplete = true
		engine.IncrResearchCompleted()
		slog.Info("research complete",
			slog.String("topic", st.Topic),
			slog.Int("queries", len(st.SearchQueries)),
		)
	}

	total := 0
	for _, r := range st.Results {
		total += r.VideoCount()
	}
	return &FinalReport{
		Status:       "complete",
		Topic:        st.Topic,
		Results:      st.Results,
		TotalQueries: len(st.SearchQueries),
		TotalVideos:  total,
	}
}
