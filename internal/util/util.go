package util

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeIdentifier trims and lowercases a username or email so that lookups are case-insensitive.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EmailDomain returns the lowercased part after the last '@', or "" when there is none.
func EmailDomain(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}

	return strings.ToLower(email[at+1:])
}

// DomainAllowed reports whether email belongs to one of the allowed domains.
// An empty allow-list accepts every domain. Subdomains of an allowed domain are accepted.
func DomainAllowed(email string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	domain := EmailDomain(email)
	if domain == "" {
		return false
	}

	for _, a := range allowed {
		a = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(a)), "@")
		if a == "" {
			continue
		}
		if domain == a || strings.HasSuffix(domain, "."+a) {
			return true
		}
	}

	return false
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
