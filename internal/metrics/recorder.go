package metrics

import (
	"time"

	"git.home.luguber.info/inful/sitenav/internal/site"
)

// ResultLabel enumerates load outcomes for counters.
type ResultLabel string

const (
	ResultSuccess   ResultLabel = "success"
	ResultUnchanged ResultLabel = "unchanged"
	ResultInvalid   ResultLabel = "invalid"
	ResultFailed    ResultLabel = "failed"
)

// Recorder defines observability hooks for configuration loads.
type Recorder interface {
	IncLoad(result ResultLabel)
	IncValidationFailure(category string)
	ObserveLoadDuration(d time.Duration)
	SetNavStats(s site.Stats)
	SetLinkProblems(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncLoad(ResultLabel)                {}
func (NoopRecorder) IncValidationFailure(string)        {}
func (NoopRecorder) ObserveLoadDuration(time.Duration)  {}
func (NoopRecorder) SetNavStats(site.Stats)             {}
func (NoopRecorder) SetLinkProblems(int)                {}
