package env

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/byebyebruce/adk-go-openai"
	go_openai "github.com/sashabaranov/go-openai"
	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// openAIConfig reads the OpenAI-compatible backend settings and reports
// every missing key. The model name is only required when requireModel
// is set.
func openAIConfig(requireModel bool) (base, key, modelName string, missing []string) {
	base = os.Getenv("OPENAI_API_BASE")
	key = os.Getenv("OPENAI_API_KEY")
	modelName = os.Getenv("OPENAI_MODEL")
	if base == "" {
		missing = append(missing, "OPENAI_API_BASE")
	}
	if key == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if requireModel && modelName == "" {
		missing = append(missing, "OPENAI_MODEL")
	}
	return base, key, modelName, missing
}

// mustOpenAIConfig is openAIConfig with a fail-fast panic naming every
// missing key.
func mustOpenAIConfig(requireModel bool) (base, key, modelName string) {
	base, key, modelName, missing := openAIConfig(requireModel)
	if len(missing) > 0 {
		panic(fmt.Sprintf("missing environment variables: %s", strings.Join(missing, ", ")))
	}
	return base, key, modelName
}

func newOpenAIModel(base, key, modelName string) model.LLM {
	cfg := go_openai.DefaultConfig(key)
	cfg.BaseURL = base
	return openai.NewOpenAIModel(modelName, cfg)
}

// OpenAIModel builds the OpenAI-compatible model. It returns an error
// instead of panicking so callers can treat the candidate as
// unavailable.
func OpenAIModel() (model.LLM, error) {
	base, key, modelName, missing := openAIConfig(true)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return newOpenAIModel(base, key, modelName), nil
}

// MustModel builds the OpenAI-compatible model, panicking when the
// backend is not fully configured.
func MustModel() model.LLM {
	return newOpenAIModel(mustOpenAIConfig(true))
}

// GeminiModel builds a Gemini-backed model. GOOGLE_GENAI_USE_VERTEXAI
// selects the Vertex AI backend over the hosted Gemini API; the hosted
// backend requires GOOGLE_API_KEY.
func GeminiModel(ctx context.Context, name string) (model.LLM, error) {
	cfg := &genai.ClientConfig{
		APIKey:  os.Getenv("GOOGLE_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	}
	if Bool("GOOGLE_GENAI_USE_VERTEXAI", false) {
		cfg.Backend = genai.BackendVertexAI
	} else if cfg.APIKey == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_API_KEY must not be empty")
	}
	return gemini.NewModel(ctx, name, cfg)
}

// MustGeminiModel is GeminiModel with a fail-fast panic.
func MustGeminiModel(ctx context.Context, name string) model.LLM {
	m, err := GeminiModel(ctx, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini model %q: %v", name, err))
	}
	return m
}
