package domain

import (
	"regexp"

	"github.com/sosodev/duration"
)

// só PT[nH][nM][nS], nessa ordem e com inteiros
var contentDurationPattern = regexp.MustCompile(`^PT(?:\d+H)?(?:\d+M)?(?:\d+S)?$`)

// ParseDuration converte a duração ISO-8601 devolvida pelo contentDetails
// (PT#H#M#S) em segundos. Qualquer valor fora desse formato vale 0.
func ParseDuration(iso string) int {
	if !contentDurationPattern.MatchString(iso) {
		return 0
	}

	parsed, err := duration.Parse(iso)
	if err != nil {
		return 0
	}

	// direto dos campos: time.Duration estoura com horas demais
	return int(parsed.Hours)*3600 + int(parsed.Minutes)*60 + int(parsed.Seconds)
}
