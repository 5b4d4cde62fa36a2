// Package committer collects Spanner mutations into commit plans and applies
// them atomically.
//
// Repositories return mutations without applying them; usecases gather the
// mutations for one operation into a CommitPlan and apply the plan in a single
// commit. Either every mutation in a plan lands or none do, which is what
// keeps an order and its items consistent.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan accumulates the mutations of one logical operation.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add appends a mutation to the plan. Nil mutations are ignored so callers
// can pass through "nothing changed" results.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple appends several mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan holds no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer applies commit plans against Spanner.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}
