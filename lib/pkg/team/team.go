// Package team assembles the step3 agent team: a root weather agent
// that delegates greetings and farewells to specialist sub-agents. The
// delegation itself is decided by the ADK at run time from the
// instruction text; this package only declares the team.
package team

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"

	"github.com/srineesh/agent-team-go/lib/pkg/greet"
)

// Greeting builds the specialist sub-agent that only greets.
func Greeting(m model.LLM) (agent.Agent, error) {
	return llmagent.New(llmagent.Config{
		Name:        "greeting_agent",
		Model:       m,
		Description: "Handles simple greetings and hellos using the 'say_hello' tool.",
		Instruction: "You are the Greeting Agent. Your ONLY task is to provide a friendly greeting to the user. " +
			"Use the 'say_hello' tool to generate the greeting. " +
			"If the user provides their name, make sure to pass it to the tool. " +
			"Do not engage in any other conversation or tasks.",
		Tools: []tool.Tool{greet.HelloTool()},
	})
}

// Farewell builds the specialist sub-agent that only says goodbye.
func Farewell(m model.LLM) (agent.Agent, error) {
	return llmagent.New(llmagent.Config{
		Name:        "farewell_agent",
		Model:       m,
		Description: "Handles simple farewells and goodbyes using the 'say_goodbye' tool.",
		Instruction: "You are the Farewell Agent. Your ONLY task is to provide a polite goodbye message. " +
			"Use the 'say_goodbye' tool when the user indicates they are leaving or ending the conversation " +
			"(e.g., using words like 'bye', 'goodbye', 'thanks bye', 'see you'). " +
			"Do not perform any other actions.",
		Tools: []tool.Tool{greet.GoodbyeTool()},
	})
}

// Root builds the coordinator agent. It keeps the weather tool for
// direct handling and links the greeting and farewell specialists as
// sub-agents.
func Root(m model.LLM, weatherTool tool.Tool) (agent.Agent, error) {
	greeting, err := Greeting(m)
	if err != nil {
		return nil, err
	}
	farewell, err := Farewell(m)
	if err != nil {
		return nil, err
	}
	return llmagent.New(llmagent.Config{
		Name:        "weather_agent_v2",
		Model:       m,
		Description: "The main coordinator agent. Handles weather requests and delegates greetings/farewells to specialists.",
		Instruction: "You are the main Weather Agent coordinating a team. Your primary responsibility is to provide weather information. " +
			"Use the 'get_weather' tool ONLY for specific weather requests (e.g., 'weather in London'). " +
			"You have specialized sub-agents: " +
			"1. 'greeting_agent': Handles simple greetings like 'Hi', 'Hello'. Delegate to it for these. " +
			"2. 'farewell_agent': Handles simple farewells like 'Bye', 'See you'. Delegate to it for these. " +
			"Analyze the user's query. If it's a greeting, delegate to 'greeting_agent'. If it's a farewell, delegate to 'farewell_agent'. " +
			"If it's a weather request, handle it yourself using 'get_weather'. " +
			"For anything else, respond appropriately or state you cannot handle it.",
		Tools:     []tool.Tool{weatherTool},
		SubAgents: []agent.Agent{greeting, farewell},
	})
}
