// Package greet provides the say_hello and say_goodbye function tools
// for the greeting and farewell specialist agents.
package greet

import (
	"fmt"
	"log"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Hello returns a personalized greeting, or a generic one when no name
// is given.
func Hello(name string) string {
	if name == "" {
		return "Hello there!"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// Goodbye returns the fixed farewell message.
func Goodbye() string {
	return "Goodbye! Have a great day."
}

// HelloInput is the say_hello tool argument schema. Name is optional.
type HelloInput struct {
	Name string `json:"name,omitempty" jsonschema:"optional name of the person to greet"`
}

// GoodbyeInput carries no arguments.
type GoodbyeInput struct{}

// Output wraps a tool message for the model.
type Output struct {
	Message string `json:"message"`
}

// HelloTool builds the say_hello function tool.
func HelloTool() tool.Tool {
	t, err := functiontool.New(functiontool.Config{
		Name:        "say_hello",
		Description: "Provides a simple greeting. If a name is provided, it will be used.",
	}, func(_ tool.Context, in HelloInput) (Output, error) {
		log.Printf("--- Tool: say_hello called with name: %q ---", in.Name)
		return Output{Message: Hello(in.Name)}, nil
	})
	if err != nil {
		log.Fatalf("Failed to create say_hello tool: %v", err)
	}
	return t
}

// GoodbyeTool builds the say_goodbye function tool.
func GoodbyeTool() tool.Tool {
	t, err := functiontool.New(functiontool.Config{
		Name:        "say_goodbye",
		Description: "Provides a simple farewell message to conclude the conversation.",
	}, func(_ tool.Context, _ GoodbyeInput) (Output, error) {
		log.Printf("--- Tool: say_goodbye called ---")
		return Output{Message: Goodbye()}, nil
	})
	if err != nil {
		log.Fatalf("Failed to create say_goodbye tool: %v", err)
	}
	return t
}
