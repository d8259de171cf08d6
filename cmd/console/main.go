// Command console serves the step3 agent team through the ADK launcher
// (console, web, or rest modes) for interactive use.
package main

import (
	"context"
	"log"
	"os"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/cmd/launcher"
	"google.golang.org/adk/cmd/launcher/full"
	"google.golang.org/adk/session"

	"github.com/srineesh/agent-team-go/lib/pkg/env"
	"github.com/srineesh/agent-team-go/lib/pkg/team"
	"github.com/srineesh/agent-team-go/lib/pkg/weather"
)

func main() {
	ctx := context.Background()

	root, err := team.Root(env.MustGeminiModel(ctx, "gemini-2.5-flash"), weather.Tool(weather.TeamDB()))
	if err != nil {
		log.Fatalf("Failed to create agent team: %v", err)
	}

	config := &launcher.Config{
		AgentLoader:    agent.NewSingleLoader(root),
		SessionService: session.InMemoryService(),
	}

	l := full.NewLauncher()
	if err := l.Execute(ctx, config, os.Args[1:]); err != nil {
		log.Fatalf("Run failed: %v\n\n%s", err, l.CommandLineSyntax())
	}
}
