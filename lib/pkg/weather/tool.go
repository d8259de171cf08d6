package weather

import (
	"log"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Input is the get_weather tool argument schema.
type Input struct {
	City string `json:"city" jsonschema:"name of the city, e.g. 'New York', 'London', 'Tokyo'"`
}

// Tool wraps db as the get_weather function tool.
func Tool(db DB) tool.Tool {
	t, err := functiontool.New(functiontool.Config{
		Name:        "get_weather",
		Description: "Retrieves the current weather report for a specified city.",
	}, func(_ tool.Context, in Input) (Result, error) {
		log.Printf("--- Tool: get_weather called for city: %s ---", in.City)
		return db.Lookup(in.City), nil
	})
	if err != nil {
		log.Fatalf("Failed to create get_weather tool: %v", err)
	}
	return t
}
