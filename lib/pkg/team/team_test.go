package team

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/model"

	"github.com/srineesh/agent-team-go/lib/pkg/weather"
)

type stubLLM struct{}

func (stubLLM) Name() string { return "stub-model" }

func (stubLLM) GenerateContent(_ context.Context, _ *model.LLMRequest, _ bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		yield(&model.LLMResponse{}, nil)
	}
}

func TestGreeting(t *testing.T) {
	a, err := Greeting(stubLLM{})
	require.NoError(t, err)
	assert.Equal(t, "greeting_agent", a.Name())
}

func TestFarewell(t *testing.T) {
	a, err := Farewell(stubLLM{})
	require.NoError(t, err)
	assert.Equal(t, "farewell_agent", a.Name())
}

func TestRoot(t *testing.T) {
	a, err := Root(stubLLM{}, weather.Tool(weather.TeamDB()))
	require.NoError(t, err)
	assert.Equal(t, "weather_agent_v2", a.Name())
}
