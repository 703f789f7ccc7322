package llm

import (
	"maps"
	"slices"
)

// Profile describes one OpenAI-compatible completion provider together with
// the fixed model registry offered to the front end.
type Profile struct {
	Name           string
	DisplayName    string
	BaseURL        string
	KeyEnv         string
	KeyPlaceholder string
	DefaultModel   string
	Models         map[string]string
}

const (
	ProviderGroq        = "groq"
	ProviderHuggingFace = "huggingface"
)

var profiles = map[string]Profile{
	ProviderGroq: {
		Name:           ProviderGroq,
		DisplayName:    "Groq",
		BaseURL:        "https://api.groq.com/openai/v1",
		KeyEnv:         "GROQ_API_KEY",
		KeyPlaceholder: "your_groq_api_key_here",
		DefaultModel:   "moonshotai/kimi-k2-instruct",
		Models: map[string]string{
			"LLAMA3_70B":   "llama-3.3-70b-versatile",
			"Kimi_K2":      "moonshotai/kimi-k2-instruct",
			"LLAMA3_8B":    "llama-3-8b-8192",
			"MIXTRAL_8X7B": "mixtral-8x7b-32768",
			"GEMMA_7B":     "gemma-7b-it",
		},
	},
	ProviderHuggingFace: {
		Name:           ProviderHuggingFace,
		DisplayName:    "Hugging Face",
		BaseURL:        "https://router.huggingface.co/v1",
		KeyEnv:         "HUGGINGFACE_API_KEY",
		KeyPlaceholder: "your_huggingface_api_key_here",
		DefaultModel:   "meta-llama/Llama-3.1-8B-Instruct",
		Models: map[string]string{
			"LLAMA3_8B":  "meta-llama/Llama-3.1-8B-Instruct",
			"MISTRAL_7B": "mistralai/Mistral-7B-Instruct-v0.3",
			"ZEPHYR_7B":  "HuggingFaceH4/zephyr-7b-beta",
		},
	},
}

// LookupProfile returns the named provider profile. The returned profile
// owns a private copy of the model registry.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, false
	}
	p.Models = maps.Clone(p.Models)
	return p, true
}

// ProfileNames lists the known provider names in sorted order.
func ProfileNames() []string {
	return slices.Sorted(maps.Keys(profiles))
}

// HasModel reports whether id is one of the registry's provider identifiers.
func (p Profile) HasModel(id string) bool {
	for _, v := range p.Models {
		if v == id {
			return true
		}
	}
	return false
}
