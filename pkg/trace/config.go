package trace

// Config is presently empty: a StreamReader has no tunable parameters
// beyond the wire format itself (§4.3 names no reader-level knob). It
// exists as a placeholder so callers configuring this package alongside
// ast.Config through the same yaml document have a symmetric shape to
// bind into, and so a future knob (e.g. an initial buffer capacity hint)
// has somewhere to land without changing NewStreamReader's signature.
type Config struct{}
