// Package formats holds the catalog of primitive format checks: simple
// predicate and regex functions pluggable into the generic validation
// machinery through string-schema chaining or refinements.
package formats

import (
	"encoding/base64"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	uuidRe     = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	durationRe = regexp.MustCompile(`^-?P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)
)

// Email reports whether s looks like an RFC 5322 address (pragmatic subset).
func Email(s string) bool { return emailRe.MatchString(s) }

// URL reports whether s is an absolute URL with a scheme and host.
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// UUID reports whether s is a canonical hex-and-dash UUID.
func UUID(s string) bool { return uuidRe.MatchString(s) }

// DateTime reports whether s is an RFC 3339 / ISO 8601 date-time.
func DateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Duration reports whether s is an ISO 8601 duration such as "P3DT4H".
// At least one component is required; a bare "P" or trailing "T" is invalid.
func Duration(s string) bool {
	if !durationRe.MatchString(s) {
		return false
	}
	trimmed := strings.TrimPrefix(s, "-")
	return trimmed != "P" && !strings.HasSuffix(trimmed, "T")
}

// IP reports whether s is a v4 or v6 address.
func IP(s string) bool { return net.ParseIP(s) != nil }

// CIDR reports whether s is a valid CIDR block.
func CIDR(s string) bool {
	_, _, err := net.ParseCIDR(s)
	return err == nil
}

// Base64 reports whether s decodes as standard base64.
func Base64(s string) bool {
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}

// Emoji reports whether s is non-empty and composed solely of emoji-range
// runes (plus joiners and variation selectors).
func Emoji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == 0x200D || r == 0xFE0F || r == 0x20E3 {
			continue
		}
		if !unicode.Is(unicode.So, r) && !(r >= 0x1F000 && r <= 0x1FAFF) && !(r >= 0x2600 && r <= 0x27BF) {
			return false
		}
	}
	return true
}
