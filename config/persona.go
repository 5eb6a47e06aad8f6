package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultPersonaPrompt = "You are Marty, an approachable, upbeat AI assistant with a friendly, " +
	"concise style. Keep answers helpful and clear for beginners. " +
	"Use plain English and avoid jargon unless asked."

// PersonaExample is one few-shot exchange prepended to the prompt.
type PersonaExample struct {
	User  string
	Reply string
}

type PersonaConfig struct {
	SystemPrompt      string
	Examples          []PersonaExample
	Catchphrases      []string
	CatchphraseChance float64
}

// GetPersonaConfig reads the persona from the environment. Few-shot examples
// use "user=>reply" pairs separated by "||", catchphrases are comma
// separated. CATCHPHRASE_PROBABILITY of 0 disables seasoning entirely.
func GetPersonaConfig() (*PersonaConfig, error) {
	systemPrompt := os.Getenv("PERSONA_PROMPT")
	if systemPrompt == "" {
		systemPrompt = defaultPersonaPrompt
	}

	var examples []PersonaExample
	if raw := os.Getenv("PERSONA_EXAMPLES"); raw != "" {
		for _, pair := range strings.Split(raw, "||") {
			user, reply, found := strings.Cut(pair, "=>")
			if !found {
				return nil, fmt.Errorf("PERSONA_EXAMPLES entry %q is not a user=>reply pair", pair)
			}
			examples = append(examples, PersonaExample{
				User:  strings.TrimSpace(user),
				Reply: strings.TrimSpace(reply),
			})
		}
	}

	var catchphrases []string
	if raw := os.Getenv("CATCHPHRASES"); raw != "" {
		for _, phrase := range strings.Split(raw, ",") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				catchphrases = append(catchphrases, phrase)
			}
		}
	}

	chance := 0.0
	if raw := os.Getenv("CATCHPHRASE_PROBABILITY"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || val < 0 || val > 1 {
			return nil, fmt.Errorf("CATCHPHRASE_PROBABILITY must be a float in [0,1]")
		}
		chance = val
	}

	return &PersonaConfig{
		SystemPrompt:      systemPrompt,
		Examples:          examples,
		Catchphrases:      catchphrases,
		CatchphraseChance: chance,
	}, nil
}
