package domain

import "strings"

// Provider is the closed two-way choice of text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
)

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderGemini, ProviderGroq:
		return true
	default:
		return false
	}
}

// ParseProvider maps a raw selector value to a Provider. "gemini" (any case)
// selects Gemini; every other value selects Groq.
func ParseProvider(raw string) Provider {
	if strings.EqualFold(strings.TrimSpace(raw), string(ProviderGemini)) {
		return ProviderGemini
	}
	return ProviderGroq
}
