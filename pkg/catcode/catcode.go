// Package catcode holds the per-character classification table that drives
// tokenization. Every byte of input resolves to exactly one Category; bytes
// without an explicit assignment are Other.
package catcode

// Category classifies a raw input byte.
type Category uint8

const (
	// Escape starts a control sequence. Plain TeX uses backslash.
	Escape Category = iota
	// BeginGroup opens a new grouping level, usually {.
	BeginGroup
	// EndGroup closes the current grouping level, usually }.
	EndGroup
	// MathShift delimits math formulas, usually $.
	MathShift
	// AlignmentTab separates table columns, usually &.
	AlignmentTab
	// EndOfLine marks the end of an input line, usually carriage return.
	EndOfLine
	// Parameter introduces macro parameters, usually #.
	Parameter
	// Superscript precedes superscripts and doubles as the escape notation
	// for bytes that cannot be typed directly, usually ^.
	Superscript
	// Subscript precedes subscripts, usually _.
	Subscript
	// Ignored bytes are removed from the input entirely.
	Ignored
	// Space receives space-collapsing treatment.
	Space
	// Letter covers a-z and A-Z by default; macro packages often add more.
	Letter
	// Other is the default for everything unassigned: digits, punctuation.
	Other
	// Active bytes act as commands without a preceding escape, usually ~.
	Active
	// Comment discards the rest of the line, usually %.
	Comment
	// Invalid bytes abort tokenization, usually delete (0x7f).
	Invalid
)

func (c Category) String() string {
	switch c {
	case Escape:
		return "Escape"
	case BeginGroup:
		return "BeginGroup"
	case EndGroup:
		return "EndGroup"
	case MathShift:
		return "MathShift"
	case AlignmentTab:
		return "AlignmentTab"
	case EndOfLine:
		return "EndOfLine"
	case Parameter:
		return "Parameter"
	case Superscript:
		return "Superscript"
	case Subscript:
		return "Subscript"
	case Ignored:
		return "Ignored"
	case Space:
		return "Space"
	case Letter:
		return "Letter"
	case Other:
		return "Other"
	case Active:
		return "Active"
	case Comment:
		return "Comment"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Table maps bytes to categories. It is a finite set of overrides on top of
// a fixed Other default, so lookups never fail. A Table is not safe for
// concurrent mutation while a scan is in progress.
type Table struct {
	overrides map[byte]Category
}

// NewTable returns a table seeded with the plain TeX assignments.
func NewTable() *Table {
	t := &Table{overrides: make(map[byte]Category, 96)}
	t.Set('\\', Escape)
	t.Set('{', BeginGroup)
	t.Set('}', EndGroup)
	t.Set('$', MathShift)
	t.Set('&', AlignmentTab)
	t.Set('\r', EndOfLine)
	t.Set('#', Parameter)
	t.Set('^', Superscript)
	t.Set('_', Subscript)
	t.Set(0x00, Ignored)
	t.Set(' ', Space)
	t.Set('\t', Space)
	t.Set('~', Active)
	t.Set('%', Comment)
	t.Set(0x7f, Invalid)
	for c := byte('a'); c <= 'z'; c++ {
		t.Set(c, Letter)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t.Set(c, Letter)
	}
	return t
}

// Get returns the category assigned to c, or Other if none is.
func (t *Table) Get(c byte) Category {
	if cat, ok := t.overrides[c]; ok {
		return cat
	}
	return Other
}

// Set assigns cat to c. The assignment affects bytes scanned from this point
// on; bytes already consumed keep the classification they were read under.
func (t *Table) Set(c byte, cat Category) {
	t.overrides[c] = cat
}
