package raw

// cursor is a single-pass, forward-only position over a token sequence.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	token := c.tokens[c.pos]
	c.pos++
	return token, true
}

// take consumes the tokens an argument of type t is entitled to.
// Exhaustion is not an error, the group is simply shorter or empty.
func (c *cursor) take(t ArgumentType) Raw {
	var r Raw
	if t.Multiple() {
		for token, ok := c.next(); ok; token, ok = c.next() {
			r.Push(token)
		}
		return r
	}

	if token, ok := c.next(); ok {
		r.Push(token)
	}
	return r
}

// Distribute splits tokens across args and returns one group per argument,
// in the order of args. All arguments share one cursor: Single arguments
// take at most one token, Multiple arguments take everything that is left.
// Missing tokens produce empty groups, even for Required arguments.
//
// Behaviour for argument lists with a Multiple argument that is not last is
// undefined; today every argument after it receives an empty group.
func Distribute(tokens []string, args []Argument) []Raw {
	c := newCursor(tokens)

	raws := make([]Raw, 0, len(args))
	for _, arg := range args {
		raws = append(raws, c.take(arg.Type))
	}

	return raws
}

// DistributeOption takes the group of a single option argument from the
// option's own token view. A nil argument yields an empty group, whatever
// tokens are supplied.
func DistributeOption(tokens []string, arg *Argument) Raw {
	if arg == nil {
		return Raw{}
	}
	return newCursor(tokens).take(arg.Type)
}
