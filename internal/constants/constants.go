package constants

import "time"

var APIConfig = struct {
	TavilyBaseURL string
	TavilyTimeout time.Duration
	GroqBaseURL   string
	GenTimeout    time.Duration
}{
	TavilyBaseURL: "https://api.tavily.com",
	TavilyTimeout: 15 * time.Second,
	GroqBaseURL:   "https://api.groq.com/openai/v1",
	GenTimeout:    90 * time.Second,
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxRequestBody    int64
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	MaxRequestBody:    64 << 10,
}

var ExtractionConfig = struct {
	MaxNameSuggestions int
	MinNameLength      int
}{
	MaxNameSuggestions: 5,
	MinNameLength:      3, // filter drops candidates of length <= 2
}

var PingConfig = struct {
	Timeout time.Duration
}{
	Timeout: 5 * time.Second,
}
