// Package output renders authorization decision reports in multiple formats.
package output

import (
	"time"

	"github.com/grantset-dev/grantset/internal/application/services"
)

// Report aggregates the decisions of one check run for rendering.
type Report struct {
	Descriptor string              `json:"descriptor" yaml:"descriptor"`
	CheckedAt  time.Time           `json:"checked_at" yaml:"checked_at"`
	Decisions  []services.Decision `json:"decisions" yaml:"decisions"`
	Summary    Summary             `json:"summary" yaml:"summary"`
}

// Summary counts decision outcomes.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Granted int `json:"granted" yaml:"granted"`
	Denied  int `json:"denied" yaml:"denied"`
}

// NewReport builds a report from decisions, computing the summary.
func NewReport(descriptor string, decisions []services.Decision) *Report {
	r := &Report{
		Descriptor: descriptor,
		CheckedAt:  time.Now().UTC(),
		Decisions:  decisions,
	}
	r.Summary.Total = len(decisions)
	for _, d := range decisions {
		if d.Granted {
			r.Summary.Granted++
		} else {
			r.Summary.Denied++
		}
	}
	return r
}

// Formatter renders a decision report to its writer.
type Formatter interface {
	Format(report *Report) error
}
