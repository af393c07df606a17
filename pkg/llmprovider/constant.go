package llmprovider

import "time"

const (
	KindAnthropic = "anthropic"
	KindOpenAI    = "openai"
	KindGemini    = "gemini"
)

const (
	DefaultAnthropicModel = "claude-3-haiku-20240307"
	DefaultOpenAIModel    = "gpt-3.5-turbo"
	DefaultGeminiModel    = "gemini-1.5-flash"

	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.1
	DefaultTimeout     = 60 * time.Second
)

// Kinds lists the supported provider kinds.
var Kinds = []string{KindAnthropic, KindOpenAI, KindGemini}
