// Command step3 runs the agent-team step: a root weather agent that
// delegates greetings and farewells to specialist sub-agents. Which
// agent handles which utterance is the ADK's decision, driven by the
// instruction text declared in the team package.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"

	"github.com/srineesh/agent-team-go/lib/pkg/chat"
	"github.com/srineesh/agent-team-go/lib/pkg/env"
	"github.com/srineesh/agent-team-go/lib/pkg/team"
	"github.com/srineesh/agent-team-go/lib/pkg/weather"
)

const (
	appName   = "weather_tutorial_agent_team"
	userID    = "user_1_agent_team"
	modelName = "gemini-2.5-flash"
)

func banner(lines ...string) {
	fmt.Println(strings.Repeat("=", 60))
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Println(strings.Repeat("=", 60))
}

func run(ctx context.Context) error {
	svc := session.InMemoryService()
	created, err := svc.Create(ctx, &session.CreateRequest{AppName: appName, UserID: userID})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	sessionID := created.Session.ID()
	fmt.Printf("Session created: App='%s', User='%s', Session='%s'\n", appName, userID, sessionID)

	root, err := team.Root(env.MustGeminiModel(ctx, modelName), weather.Tool(weather.TeamDB()))
	if err != nil {
		return fmt.Errorf("create agent team: %w", err)
	}
	fmt.Printf("Root Agent '%s' created using model '%s'.\n", root.Name(), modelName)

	r, err := runner.New(runner.Config{AppName: appName, Agent: root, SessionService: svc})
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}
	fmt.Printf("Runner created for agent '%s'.\n", root.Name())

	banner("INTERACTION 1: GREETING (should delegate to greeting_agent)")
	chat.CallAgent(ctx, r, userID, sessionID, "Hello there! my name is srineesh")

	banner("INTERACTION 2: WEATHER REQUEST (handled by root agent)")
	chat.CallAgent(ctx, r, userID, sessionID, "What is the weather in New York?")

	banner("INTERACTION 3: FAREWELL (should delegate to farewell_agent)")
	chat.CallAgent(ctx, r, userID, sessionID, "Thanks, bye!")

	return nil
}

func main() {
	banner("AGENT TEAM TUTORIAL - STEP 3", "TESTING AGENT TEAM DELEGATION")
	if err := run(context.Background()); err != nil {
		log.Fatalf("An error occurred: %v", err)
	}
	banner("AGENT TEAM CONVERSATION COMPLETED SUCCESSFULLY")
}
