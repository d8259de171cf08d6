// Command step1 runs the first tutorial step: a single Gemini-backed
// weather agent answering three scripted queries through an in-memory
// session.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/adk/tool"

	"github.com/srineesh/agent-team-go/lib/pkg/chat"
	"github.com/srineesh/agent-team-go/lib/pkg/env"
	"github.com/srineesh/agent-team-go/lib/pkg/weather"
)

const (
	appName   = "weather_tutorial_app"
	userID    = "user_1"
	modelName = "gemini-2.5-flash"
)

func banner(lines ...string) {
	fmt.Println(strings.Repeat("=", 80))
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Println(strings.Repeat("=", 80))
}

func run(ctx context.Context) error {
	svc := session.InMemoryService()
	created, err := svc.Create(ctx, &session.CreateRequest{AppName: appName, UserID: userID})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	sessionID := created.Session.ID()
	fmt.Printf("Session created: App='%s', User='%s', Session='%s'\n", appName, userID, sessionID)

	weatherAgent, err := llmagent.New(llmagent.Config{
		Name:        "weather_agent_v1",
		Model:       env.MustGeminiModel(ctx, modelName),
		Description: "Provides weather information for specific cities.",
		Instruction: "You are a helpful weather assistant. " +
			"When the user asks for the weather in a specific city, " +
			"use the 'get_weather' tool to find the information. " +
			"If the tool returns an error, inform the user politely. " +
			"If the tool is successful, present the weather report clearly.",
		Tools: []tool.Tool{weather.Tool(weather.DemoDB())},
	})
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	fmt.Printf("Agent '%s' created using model '%s'.\n", weatherAgent.Name(), modelName)

	r, err := runner.New(runner.Config{AppName: appName, Agent: weatherAgent, SessionService: svc})
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}
	fmt.Printf("Runner created for agent '%s'.\n", weatherAgent.Name())

	queries := []string{
		"What is the weather like in London?",
		"How about Paris?", // expects the tool's error message
		"Tell me the weather in New York",
	}
	for _, q := range queries {
		chat.CallAgent(ctx, r, userID, sessionID, q)
	}
	return nil
}

func main() {
	banner("STEP 1: YOUR FIRST AGENT - BASIC WEATHER LOOKUP")
	if err := run(context.Background()); err != nil {
		log.Fatalf("An error occurred: %v", err)
	}
	banner("CONVERSATION COMPLETE")
}
