// Package chat drives scripted conversations through an ADK runner and
// selects a working agent among fallback candidates.
package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/genai"
)

const noResponse = "Agent did not produce a final response."

// NewUserText wraps a query string as a user message in ADK format.
func NewUserText(text string) *genai.Content {
	return &genai.Content{
		Role:  string(genai.RoleUser),
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	}
}

// TextOf concatenates the text parts of a content.
func TextOf(content *genai.Content) string {
	if content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// Truncate caps s at n bytes for one-line error reporting.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// CallAgent sends one query through the runner and prints the final
// response for the turn. The event stream is scanned up to the first
// final-response event; remaining events are abandoned. An execution
// error ends the turn, never the conversation.
func CallAgent(ctx context.Context, r *runner.Runner, userID, sessionID, query string) {
	fmt.Printf("\n>>> User Query: %s\n", query)

	final := noResponse
	for event, err := range r.Run(ctx, userID, sessionID, NewUserText(query), agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}) {
		if err != nil {
			final = fmt.Sprintf("Error during agent execution: %s", Truncate(err.Error(), 100))
			break
		}
		if !event.IsFinalResponse() {
			continue
		}
		if text := TextOf(event.Content); text != "" {
			final = text
		} else if event.ErrorMessage != "" {
			final = "Agent escalated: " + event.ErrorMessage
		}
		break
	}

	fmt.Printf("<<< Agent Response: %s\n", final)
}
