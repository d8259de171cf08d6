package chat

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
)

// Candidate pairs a human-readable label with an agent considered for
// selection.
type Candidate struct {
	Label string
	Agent agent.Agent
}

// ProbeFunc reports whether an agent can complete a trivial turn.
type ProbeFunc func(context.Context, agent.Agent) error

// Probe sends the fixed utterance "Hello" through a throwaway session
// and runner and drains the event stream. Any error along the way marks
// the agent invalid. One shot, no retry.
func Probe(ctx context.Context, a agent.Agent) error {
	svc := session.InMemoryService()
	created, err := svc.Create(ctx, &session.CreateRequest{AppName: "validator", UserID: "check"})
	if err != nil {
		return fmt.Errorf("create probe session: %w", err)
	}
	r, err := runner.New(runner.Config{AppName: "validator", Agent: a, SessionService: svc})
	if err != nil {
		return fmt.Errorf("create probe runner: %w", err)
	}
	for _, err := range r.Run(ctx, "check", created.Session.ID(), NewUserText("Hello"), agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}) {
		if err != nil {
			return err
		}
	}
	return nil
}

// SelectAgent probes candidates in order and returns the first that
// passes. Candidates after the winner are never probed. Returns nil
// when every candidate fails.
func SelectAgent(ctx context.Context, candidates []Candidate, probe ProbeFunc) *Candidate {
	for i, c := range candidates {
		fmt.Printf("Validating agent: %s...\n", c.Label)
		if err := probe(ctx, c.Agent); err != nil {
			fmt.Printf("✗ Agent '%s' failed validation: %s\n", c.Label, Truncate(err.Error(), 100))
			continue
		}
		fmt.Printf("✓ Agent '%s' is valid and working.\n", c.Label)
		return &candidates[i]
	}
	return nil
}
