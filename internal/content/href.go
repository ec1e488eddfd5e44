package content

import (
	"fmt"
	"regexp"
	"strings"
)

// HostStripper is a [Transformer] that turns absolute href URLs pointing at a
// host into root-relative ones, e.g. href="https://example.com/foo" becomes
// href="/foo". The whole document is rewritten in one pass without
// tokenization.
type HostStripper struct {
	hostPrefix string
	pattern    *regexp.Regexp
}

// NewHostStripper returns a [HostStripper] for hostPrefix, a scheme and host
// such as "https://example.com". Trailing slashes are ignored so the stripped
// URL keeps its leading '/'.
func NewHostStripper(hostPrefix string) (*HostStripper, error) {
	hostPrefix = strings.TrimRight(hostPrefix, "/")
	if hostPrefix == "" {
		return nil, ErrEmptyHostPrefix
	}

	// The character between "href=" and the host is the attribute delimiter,
	// usually a quote. When the prefix ends inside a hostname, the next
	// character must not extend it, or "https://example.com" would also
	// match "https://example.community".
	expr := `(href=.)` + regexp.QuoteMeta(hostPrefix)
	if isHostChar(hostPrefix[len(hostPrefix)-1]) {
		expr += `([^A-Za-z0-9.:_-]|$)`
	} else {
		expr += `()`
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile host pattern for %q: %w", hostPrefix, err)
	}
	return &HostStripper{hostPrefix: hostPrefix, pattern: pattern}, nil
}

// HostPrefix returns the host prefix removed from href values.
func (h *HostStripper) HostPrefix() string { return h.hostPrefix }

// Transform satisfies [Transformer]. It never returns an error.
func (h *HostStripper) Transform(document string) (string, error) {
	return h.pattern.ReplaceAllString(document, "${1}${2}"), nil
}

func isHostChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	default:
		return c == '.' || c == ':' || c == '_' || c == '-'
	}
}
