package raw

// ArgumentType is the arity of an argument: how many tokens it expects
// and whether it may be left out.
type ArgumentType uint8

const (
	// RequiredSingle expects exactly one token.
	RequiredSingle ArgumentType = iota
	// OptionalSingle expects zero or one token.
	OptionalSingle
	// RequiredMultiple expects one or more tokens and takes every token left.
	RequiredMultiple
	// OptionalMultiple expects zero or more tokens and takes every token left.
	OptionalMultiple
)

func (t ArgumentType) Required() bool {
	return t == RequiredSingle || t == RequiredMultiple
}

func (t ArgumentType) Multiple() bool {
	return t == RequiredMultiple || t == OptionalMultiple
}

func (t ArgumentType) String() string {
	switch t {
	case RequiredSingle:
		return "RequiredSingle"
	case OptionalSingle:
		return "OptionalSingle"
	case RequiredMultiple:
		return "RequiredMultiple"
	case OptionalMultiple:
		return "OptionalMultiple"
	default:
		return "Unknown"
	}
}

// Argument describes one declared parameter of a command or option.
//
// In a list of arguments at most one may be Multiple and it has to be the
// last one: a Multiple argument drains every remaining token, so arguments
// declared after it always receive an empty group. Distribute does not check
// this; callers are expected to order their descriptors.
type Argument struct {
	Name string
	Type ArgumentType
}

// String renders the argument in usage notation, e.g. "<dir>" or "[dirs...]".
func (a Argument) String() string {
	name := a.Name
	if a.Type.Multiple() {
		name += "..."
	}
	if a.Type.Required() {
		return "<" + name + ">"
	}
	return "[" + name + "]"
}
