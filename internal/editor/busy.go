package editor

import "sync"

// Busy tracks pending AI calls by an editor-chosen token, so only the
// interacted field shows a pending state: the skill-suggestion token is
// independent of a per-experience token keyed by that experience's id.
//
// Tokens are counted, not exclusive: a second trigger of the same operation
// while one is pending starts a fully independent call, and each call
// releases its token exactly once, success or failure.
type Busy struct {
	mu     sync.Mutex
	tokens map[string]int
}

// NewBusy returns an empty tracker.
func NewBusy() *Busy {
	return &Busy{tokens: make(map[string]int)}
}

// Acquire marks a token busy for one call.
func (b *Busy) Acquire(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[token]++
}

// Release clears one call's hold on a token. Safe to call for a token that
// is not held.
func (b *Busy) Release(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tokens[token] <= 1 {
		delete(b.tokens, token)
		return
	}
	b.tokens[token]--
}

// Held reports whether any call currently holds the token.
func (b *Busy) Held(token string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tokens[token] > 0
}

// Tokens returns the currently held tokens.
func (b *Busy) Tokens() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.tokens))
	for token := range b.tokens {
		out = append(out, token)
	}
	return out
}
