// Package urlcheck decides whether a cell value is usable as a website URL.
// The checks are heuristic: they reject empty values, bare words, email
// addresses, and bare generic email domains that show up in contact columns.
package urlcheck

import "strings"

// genericEmailDomains are consumer mail providers. A value on one of these
// domains is an email artifact, not an organization website.
var genericEmailDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"proton.me":      true,
	"live.com":       true,
	"msn.com":        true,
	"mail.com":       true,
	"gmx.com":        true,
	"zoho.com":       true,
}

// IsPlausible reports whether candidate can be used as a website URL.
// It is pure and total; the same rules gate both "does this row need a
// lookup" and "may an existing value be overwritten".
func IsPlausible(candidate string) bool {
	s := strings.TrimSpace(candidate)
	if s == "" {
		return false
	}

	// Bare words like "none" or "pending" carry no domain.
	if !strings.Contains(s, ".") {
		return false
	}

	// Email addresses on consumer providers are not websites.
	if strings.Contains(s, "@") {
		if domain, ok := EmailDomain(s); ok && genericEmailDomains[domain] {
			return false
		}
	}

	if genericEmailDomains[normalizeHost(s)] {
		return false
	}

	return true
}

// EmailDomain returns the lowercased substring after the last "@".
// ok is false when there is no "@" or it is the final character.
func EmailDomain(email string) (string, bool) {
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return "", false
	}
	return strings.ToLower(email[idx+1:]), true
}

// normalizeHost reduces a URL-ish string to a bare lowercase host for
// comparison against the generic-domain set.
func normalizeHost(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	return s
}
