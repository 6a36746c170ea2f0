package llmprovider

import (
	"fmt"
	"regexp"
	"sync"
)

// RedactedPlaceholder replaces credential-shaped substrings in error output.
const RedactedPlaceholder = "[REDACTED]"

// Redactor is an explicit registry of secret patterns. The host application
// creates one at startup and passes it into provider constructors; providers
// run every outbound-failure message through it before surfacing the error.
//
// Registration is idempotent: registering the same expression twice neither
// errors nor duplicates matches. Safe for concurrent use.
type Redactor struct {
	mu       sync.RWMutex
	patterns []*regexp.Regexp
	seen     map[string]struct{}
}

// NewRedactor creates an empty redactor.
func NewRedactor() *Redactor {
	return &Redactor{
		seen: make(map[string]struct{}),
	}
}

// RegisterPattern compiles and registers a secret pattern.
// Re-registering an identical expression is a no-op.
func (r *Redactor) RegisterPattern(expr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seen[expr]; ok {
		return nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("failed to compile redaction pattern: %w", err)
	}

	r.patterns = append(r.patterns, re)
	r.seen[expr] = struct{}{}
	return nil
}

// Redact replaces every registered pattern match in s with RedactedPlaceholder.
func (r *Redactor) Redact(s string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, re := range r.patterns {
		s = re.ReplaceAllString(s, RedactedPlaceholder)
	}
	return s
}

// PatternCount returns the number of registered patterns.
func (r *Redactor) PatternCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}
