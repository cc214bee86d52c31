package stubserver

import "fmt"

// Mode selects how the stub answers.
type Mode string

const (
	// ModeUp serves every route.
	ModeUp Mode = "up"
	// ModeDown answers 503 on every route.
	ModeDown Mode = "down"
	// ModeLegacy answers 404 on routes missing from older deployments.
	ModeLegacy Mode = "legacy"
)

// ParseMode validates s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeUp, ModeDown, ModeLegacy:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// legacyMissingRoutes are the route patterns older deployments answer with
// 404.
var legacyMissingRoutes = map[string]bool{
	"/send-request-by-biodata":  true,
	"/send-request-by-objectid": true,
	"/browse-matches/{email}":   true,
	"/send-verification-email":  true,
	"/complete-registration":    true,
}
