// Package raw splits the tokens of a command invocation into per-argument
// groups and converts those groups into typed values.
//
// A group is represented by Raw. Distribute and DistributeOption build groups
// from argument descriptors, the conversion helpers (Scalar, Optional, Slice,
// OptionalSlice and friends) turn them into values. Conversions never fail:
// a missing or malformed token yields the zero value of the target type.
package raw

import (
	"iter"
	"slices"
	"strings"
)

// Raw is an ordered group of tokens assigned to a single argument.
// The zero value is an empty group ready to use.
type Raw struct {
	tokens []string
}

// New returns a group holding a copy of tokens.
func New(tokens ...string) Raw {
	return Raw{tokens: slices.Clone(tokens)}
}

// Collect builds a group from a sequence of tokens.
func Collect(seq iter.Seq[string]) Raw {
	return Raw{tokens: slices.Collect(seq)}
}

// Push appends a token to the end of the group.
func (r *Raw) Push(token string) {
	r.tokens = append(r.tokens, token)
}

// Remove deletes and returns the token at idx.
// It panics if idx is out of range, like indexing a slice.
func (r *Raw) Remove(idx int) string {
	token := r.tokens[idx]
	r.tokens = slices.Delete(r.tokens, idx, idx+1)
	return token
}

func (r Raw) IsEmpty() bool {
	return len(r.tokens) == 0
}

func (r Raw) Len() int {
	return len(r.tokens)
}

// Get returns the token at idx and whether it exists.
func (r Raw) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(r.tokens) {
		return "", false
	}
	return r.tokens[idx], true
}

// First returns the first token of the group, which is the only token
// scalar conversions look at.
func (r Raw) First() (string, bool) {
	return r.Get(0)
}

// Tokens returns a copy of the tokens in order.
func (r Raw) Tokens() []string {
	return slices.Clone(r.tokens)
}

// All iterates the tokens front to back.
func (r Raw) All() iter.Seq2[int, string] {
	return slices.All(r.tokens)
}

// Backward iterates the tokens back to front.
func (r Raw) Backward() iter.Seq2[int, string] {
	return slices.Backward(r.tokens)
}

func (r Raw) String() string {
	return "[" + strings.Join(r.tokens, " ") + "]"
}
