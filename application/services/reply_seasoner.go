package services

import (
	"strings"

	"github.com/mhindle4/marty-backend/application/ports/inbound"
	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
)

type replySeasoner struct {
	catchphrases []string
	chance       float64
	random       outbound.RandSource
}

func NewReplySeasoner(persona *config.PersonaConfig, random outbound.RandSource) inbound.ReplySeasonerPort {
	return &replySeasoner{
		catchphrases: persona.Catchphrases,
		chance:       persona.CatchphraseChance,
		random:       random,
	}
}

func (s *replySeasoner) Season(text string) string {
	if s.chance <= 0 || len(s.catchphrases) == 0 {
		return text
	}
	if s.startsWithCatchphrase(text) {
		return text
	}
	if s.random.Float64() >= s.chance {
		return text
	}
	phrase := s.catchphrases[s.random.IntN(len(s.catchphrases))]
	return phrase + " " + text
}

func (s *replySeasoner) startsWithCatchphrase(text string) bool {
	for _, phrase := range s.catchphrases {
		if strings.HasPrefix(text, phrase) {
			return true
		}
	}
	return false
}
