// Package services contains application services that sit between the
// permission domain and its consumers: building permission sets from
// descriptors and answering authorization requests.
package services

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grantset-dev/grantset/internal/application/apperrors"
	"github.com/grantset-dev/grantset/internal/domain/permission"
	"github.com/grantset-dev/grantset/internal/domain/privilege"
	"github.com/grantset-dev/grantset/internal/domain/values"
)

// checkConcurrency bounds how many batch checks run at once.
const checkConcurrency = 8

// Request is one authorization question: does the held permission set
// cover these actions within this application, on this resource?
type Request struct {
	Application string   `json:"application" yaml:"application"`
	Actions     []string `json:"actions,omitempty" yaml:"actions,omitempty"`
	Resource    string   `json:"resource" yaml:"resource"`
}

// Decision is the evaluated outcome of one Request.
type Decision struct {
	ID          values.DecisionID `json:"id" yaml:"id"`
	Application string            `json:"application" yaml:"application"`
	Actions     []string          `json:"actions,omitempty" yaml:"actions,omitempty"`
	Resource    string            `json:"resource" yaml:"resource"`
	Granted     bool              `json:"granted" yaml:"granted"`
	CheckedAt   time.Time         `json:"checked_at" yaml:"checked_at"`
}

// Authorizer is an authorization decision point over one immutable
// permission set. It is safe for concurrent use.
type Authorizer struct {
	set *permission.Set
}

// NewAuthorizer creates an Authorizer over an already-built permission set.
func NewAuthorizer(set *permission.Set) *Authorizer {
	if set == nil {
		set = permission.None
	}
	return &Authorizer{set: set}
}

// NewAuthorizerFromGrants builds the permission set from raw grants and
// wraps it in an Authorizer.
func NewAuthorizerFromGrants(grants []permission.Grant) *Authorizer {
	return &Authorizer{set: permission.NewSet(grants)}
}

// Set returns the underlying permission set.
func (a *Authorizer) Set() *permission.Set {
	return a.set
}

// Check evaluates a single request. The request's application and actions
// form the candidate privilege; an invalid candidate (empty application)
// is an evaluation failure, not a denial.
func (a *Authorizer) Check(req Request) (Decision, error) {
	candidate, err := privilege.New(req.Application, req.Actions...)
	if err != nil {
		return Decision{}, apperrors.NewDecisionError(req.Application, req.Resource, err)
	}

	granted := a.set.Grants(candidate, req.Resource)
	if !granted {
		slog.Debug("permission denied",
			"application", req.Application,
			"actions", req.Actions,
			"resource", req.Resource)
	}

	return Decision{
		ID:          values.NewDecisionID(),
		Application: req.Application,
		Actions:     candidate.Actions(),
		Resource:    req.Resource,
		Granted:     granted,
		CheckedAt:   time.Now().UTC(),
	}, nil
}

// CheckAll evaluates a batch of requests concurrently. The permission set
// is immutable, so checks share it without locking. Results keep the order
// of the input requests. The first evaluation failure aborts the batch.
func (a *Authorizer) CheckAll(ctx context.Context, reqs []Request) ([]Decision, error) {
	decisions := make([]Decision, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(checkConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := a.Check(req)
			if err != nil {
				return err
			}
			decisions[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decisions, nil
}
