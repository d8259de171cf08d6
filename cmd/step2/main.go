// Command step2 demonstrates model fallback: a Gemini candidate and an
// OpenAI-compatible candidate are constructed independently, probed in
// order with a trivial "Hello" turn, and the first valid one drives the
// scripted conversation. Exits with status 1 when no candidate works.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
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
	appName         = "weather_tutorial_app"
	userID          = "user_1"
	geminiModelName = "gemini-2.5-flash"
)

const weatherInstruction = "You are a helpful weather assistant. " +
	"When the user asks for the weather in a specific city, " +
	"use the 'get_weather' tool to find the information. " +
	"If the tool returns an error, inform the user politely. " +
	"If the tool is successful, present the weather report clearly."

var errNoAgents = errors.New("no usable agents")

func banner(lines ...string) {
	fmt.Println(strings.Repeat("=", 80))
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Println(strings.Repeat("=", 80))
}

// buildCandidates attempts each candidate independently: a failure to
// construct one never prevents trying the other.
func buildCandidates(ctx context.Context, weatherTool tool.Tool) []chat.Candidate {
	var out []chat.Candidate

	fmt.Println("\nAttempting to create Gemini agent...")
	if m, err := env.GeminiModel(ctx, geminiModelName); err != nil {
		fmt.Printf("✗ Failed to create Gemini agent: %s\n", chat.Truncate(err.Error(), 100))
	} else if a, err := llmagent.New(llmagent.Config{
		Name:        "weather_agent_gemini",
		Model:       m,
		Description: "Provides weather information using Gemini.",
		Instruction: weatherInstruction,
		Tools:       []tool.Tool{weatherTool},
	}); err != nil {
		fmt.Printf("✗ Failed to create Gemini agent: %s\n", chat.Truncate(err.Error(), 100))
	} else {
		fmt.Println("✓ Gemini agent created successfully!")
		out = append(out, chat.Candidate{Label: "Gemini", Agent: a})
	}

	fmt.Println("\nAttempting to create OpenAI agent...")
	if m, err := env.OpenAIModel(); err != nil {
		fmt.Printf("✗ Failed to create OpenAI agent: %s\n", chat.Truncate(err.Error(), 100))
	} else if a, err := llmagent.New(llmagent.Config{
		Name:        "weather_agent_openai",
		Model:       m,
		Description: "Provides weather information using an OpenAI-compatible model.",
		Instruction: weatherInstruction,
		Tools:       []tool.Tool{weatherTool},
	}); err != nil {
		fmt.Printf("✗ Failed to create OpenAI agent: %s\n", chat.Truncate(err.Error(), 100))
	} else {
		fmt.Println("✓ OpenAI agent created successfully!")
		out = append(out, chat.Candidate{Label: "OpenAI", Agent: a})
	}

	return out
}

func run(ctx context.Context) error {
	weatherTool := weather.Tool(weather.DemoDB())

	candidates := buildCandidates(ctx, weatherTool)
	if len(candidates) == 0 {
		banner("ERROR: NO AGENTS AVAILABLE",
			"Both Gemini and OpenAI agents failed to initialize.",
			"Please check your API keys and try again.")
		return errNoAgents
	}

	svc := session.InMemoryService()
	created, err := svc.Create(ctx, &session.CreateRequest{AppName: appName, UserID: userID})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	sessionID := created.Session.ID()
	fmt.Printf("\nSession created: App='%s', User='%s', Session='%s'\n\n", appName, userID, sessionID)

	selected := chat.SelectAgent(ctx, candidates, chat.Probe)
	if selected == nil {
		banner("CRITICAL ERROR: No agents passed validation.")
		return errNoAgents
	}
	banner(fmt.Sprintf("SELECTED AGENT: %s", selected.Label),
		fmt.Sprintf("Using agent: %s", selected.Agent.Name()))

	r, err := runner.New(runner.Config{AppName: appName, Agent: selected.Agent, SessionService: svc})
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	banner("STARTING CONVERSATION")
	queries := []string{
		"What is the weather like in London?",
		"How about Paris?",
		"Tell me the weather in New York",
	}
	for _, q := range queries {
		chat.CallAgent(ctx, r, userID, sessionID, q)
	}
	banner("CONVERSATION COMPLETE")
	return nil
}

func main() {
	banner("WEATHER AGENT WITH MODEL FALLBACK",
		"This script demonstrates automatic fallback:",
		"1. Tries the Gemini agent first",
		"2. Falls back to the OpenAI-compatible agent",
		"3. Uses whichever agent passes validation")

	if err := run(context.Background()); err != nil {
		if errors.Is(err, errNoAgents) {
			fmt.Println("Aborting conversation due to lack of valid agents.")
			fmt.Println("\nTroubleshooting:")
			fmt.Println("1. Set GOOGLE_API_KEY or the OPENAI_* variables (see .env.example)")
			fmt.Println("2. Check that your API keys are valid")
			fmt.Println("3. Verify you have an internet connection")
			os.Exit(1)
		}
		log.Fatalf("An error occurred: %v", err)
	}
}
