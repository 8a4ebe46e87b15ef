package tokenizer

import "github.com/texlab/texlex/pkg/catcode"

// Kind identifies what a produced token is. The first sixteen values mirror
// catcode.Category one to one; the last two are synthesized by the scanner
// and never appear in a classification table.
type Kind uint8

const (
	KindEscape Kind = iota
	KindBeginGroup
	KindEndGroup
	KindMathShift
	KindAlignmentTab
	KindEndOfLine
	KindParameter
	KindSuperscript
	KindSubscript
	KindIgnored
	KindSpace
	KindLetter
	KindOther
	KindActive
	KindComment
	KindInvalid
	KindControlSequence
	KindParameterToken
)

// KindOf converts a table category into the token kind carrying the same
// classification. This is the only bridge between the two types.
func KindOf(cat catcode.Category) Kind {
	return Kind(cat)
}

func (k Kind) String() string {
	switch k {
	case KindControlSequence:
		return "ControlSequence"
	case KindParameterToken:
		return "ParameterToken"
	default:
		return catcode.Category(k).String()
	}
}

// Token is one unit of scanner output. Text is never empty.
type Token struct {
	Text string
	Kind Kind
}
