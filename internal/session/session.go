// Package session tracks per-operation statistics and the process-wide
// cost ledger. Stats are owned by the orchestrator for one run and handed
// back as a snapshot; the ledger is owned by the caller and folds in each
// terminal snapshot.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind tags the operation that produced a stats record.
type Kind string

const (
	KindURLRepair Kind = "url_repair"
	KindDossier   Kind = "dossier"
	KindEstimate  Kind = "estimate"
)

// Status is the lifecycle state of one operation.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusEstimating Status = "estimating"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// OperationStats accumulates counters for a single enrichment run.
type OperationStats struct {
	ID           uuid.UUID
	Kind         Kind
	Status       Status
	Model        string
	InputTokens  int64
	OutputTokens int64
	Requests     int
	Cost         float64
	Progress     string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewOperationStats creates a running stats record for one operation.
func NewOperationStats(kind Kind, model string) *OperationStats {
	return &OperationStats{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    StatusRunning,
		Model:     model,
		StartedAt: time.Now(),
	}
}

// Finalize marks the record terminal. succeeded and total drive the
// human-readable progress summary.
func (s *OperationStats) Finalize(status Status, succeeded, total int) {
	s.Status = status
	s.FinishedAt = time.Now()
	s.Progress = fmt.Sprintf("%d/%d batches successful", succeeded, total)
}

// Ledger is the session-wide cumulative cost record. It only grows until
// Reset, which the caller invokes when new source data is loaded.
type Ledger struct {
	InputTokens  int64
	OutputTokens int64
	Requests     int
	Cost         float64
	Operations   int
}

// Fold adds a terminal operation's counters into the ledger. Non-terminal
// stats are ignored so an operation is never counted twice or early.
func (l *Ledger) Fold(stats *OperationStats) {
	if stats == nil || !stats.Status.Terminal() {
		return
	}
	l.InputTokens += stats.InputTokens
	l.OutputTokens += stats.OutputTokens
	l.Requests += stats.Requests
	l.Cost += stats.Cost
	l.Operations++
}

// Reset zeroes the ledger.
func (l *Ledger) Reset() {
	*l = Ledger{}
}
