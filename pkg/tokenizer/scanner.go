// Package tokenizer converts text into a flat stream of classified tokens
// under a mutable catcode table. It implements the lexical stage of a
// TeX-like input processor: control sequences, parameter tokens, superscript
// byte encoding, comment and space collapsing. It does no macro expansion
// and no I/O.
package tokenizer

import (
	"errors"

	"github.com/texlab/texlex/pkg/catcode"
)

// \par is synthesized for blank lines with a literal backslash, independent
// of which byte currently carries the Escape category.
const parText = "\\par"

type lexerState uint8

const (
	stateNewLine lexerState = iota
	stateSkippingSpaces
	stateMiddleOfLine
)

// Scanner walks normalized input lines and produces tokens one at a time.
// It holds a cursor, the line-scanning state, and a one-token lookahead
// slot. A Scanner is not safe for concurrent use.
type Scanner struct {
	table      *catcode.Table
	endLine    byte
	useEndLine bool

	lines []string
	line  int
	col   int
	state lexerState

	peeked  bool
	peekTok Token
	err     error
}

// NewScanner creates a scanner over text using table for classification.
// End-of-line synthesis defaults to carriage return, matching the default
// EndOfLine assignment in catcode.NewTable.
func NewScanner(table *catcode.Table, text string) *Scanner {
	s := &Scanner{
		table:      table,
		endLine:    '\r',
		useEndLine: true,
	}
	s.Reset(text)
	return s
}

// SetEndLineChar selects the byte appended to every normalized line. Codes
// outside 0..254 disable the synthesis entirely rather than failing. Takes
// effect at the next Reset, since lines are materialized eagerly.
func (s *Scanner) SetEndLineChar(c int) {
	if c >= 0 && c < 255 {
		s.endLine = byte(c)
		s.useEndLine = true
	} else {
		s.useEndLine = false
	}
}

// Reset re-initializes the scanner with new input. The previous cursor,
// state, lookahead, and any sticky error are discarded.
func (s *Scanner) Reset(text string) {
	s.lines = normalizeLines(text, s.endLine, s.useEndLine)
	s.line = 0
	s.col = 0
	s.state = stateNewLine
	s.peeked = false
	s.peekTok = Token{}
	s.err = nil
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token. After exhaustion it returns ErrExhausted; after a scan
// failure it keeps returning that failure.
func (s *Scanner) Peek() (Token, error) {
	if s.peeked {
		return s.peekTok, nil
	}
	if s.err != nil {
		return Token{}, s.err
	}
	tok, err := s.scan()
	if err != nil {
		s.err = err
		return Token{}, err
	}
	s.peekTok = tok
	s.peeked = true
	return tok, nil
}

// Next returns the next token, draining the lookahead slot if Peek filled it.
func (s *Scanner) Next() (Token, error) {
	if s.peeked {
		s.peeked = false
		tok := s.peekTok
		s.peekTok = Token{}
		return tok, nil
	}
	if s.err != nil {
		return Token{}, s.err
	}
	tok, err := s.scan()
	if err != nil {
		s.err = err
		return Token{}, err
	}
	return tok, nil
}

// HasMore reports whether another token is available.
func (s *Scanner) HasMore() bool {
	_, err := s.Peek()
	return err == nil
}

// Tokens drains the rest of the stream into a slice. Clean exhaustion is not
// an error; a scan failure is returned along with the tokens produced before
// it.
func (s *Scanner) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if errors.Is(err, ErrExhausted) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// scan produces the next token from the cursor position. Three events move
// the cursor to the next line: an EndOfLine-classified byte, a comment, and
// running off the end of a line; all go through advanceLine.
func (s *Scanner) scan() (Token, error) {
	for s.line < len(s.lines) {
		line := s.lines[s.line]
		advanced := false
		for s.col < len(line) {
			startLine := s.line
			ch := line[s.col]
			s.col++
			tok, ok, err := s.dispatch(ch, line)
			if err != nil {
				return Token{}, err
			}
			if ok {
				return tok, nil
			}
			if s.line != startLine {
				advanced = true
				break
			}
		}
		if !advanced {
			// Ran off the line without an end-of-line byte.
			s.advanceLine()
			s.state = stateNewLine
		}
	}
	return Token{}, ErrExhausted
}

// dispatch handles one classified byte. ok reports whether a token was
// produced; a false ok with nil error means the byte was swallowed and
// scanning continues.
func (s *Scanner) dispatch(ch byte, line string) (Token, bool, error) {
	cat := s.table.Get(ch)
	switch cat {
	case catcode.Escape:
		return s.scanControlSequence(ch, line)

	case catcode.EndOfLine:
		prev := s.state
		s.advanceLine()
		s.state = stateNewLine
		switch prev {
		case stateNewLine:
			return Token{Text: parText, Kind: KindControlSequence}, true, nil
		case stateMiddleOfLine:
			return Token{Text: " ", Kind: KindSpace}, true, nil
		}
		// SkippingSpaces: the line break is absorbed.
		return Token{}, false, nil

	case catcode.Parameter:
		return s.scanParameter(ch, line), true, nil

	case catcode.Superscript:
		return s.scanSuperscript(ch, line)

	case catcode.Ignored:
		return Token{}, false, nil

	case catcode.Space:
		if s.state == stateMiddleOfLine {
			s.state = stateSkippingSpaces
			return Token{Text: " ", Kind: KindSpace}, true, nil
		}
		return Token{}, false, nil

	case catcode.Comment:
		s.advanceLine()
		return Token{}, false, nil

	case catcode.Invalid:
		return Token{}, false, &InvalidCharacterError{Char: ch, Line: s.line + 1, Col: s.col}

	default:
		// BeginGroup, EndGroup, MathShift, AlignmentTab, Subscript,
		// Letter, Other, Active: the byte is its own token.
		s.state = stateMiddleOfLine
		return Token{Text: string([]byte{ch}), Kind: KindOf(cat)}, true, nil
	}
}

// scanControlSequence consumes the character(s) after an escape byte:
// a run of Letters forms a control word, a Space a control space, and any
// other single byte a control symbol.
func (s *Scanner) scanControlSequence(esc byte, line string) (Token, bool, error) {
	if s.col >= len(line) {
		return Token{}, false, &DanglingEscapeError{Line: s.line + 1, Col: s.col}
	}
	ch := line[s.col]
	s.col++

	switch s.table.Get(ch) {
	case catcode.Letter:
		start := s.col - 1
		for s.col < len(line) && s.table.Get(line[s.col]) == catcode.Letter {
			s.col++
		}
		s.state = stateSkippingSpaces
		return Token{Text: string([]byte{esc}) + line[start:s.col], Kind: KindControlSequence}, true, nil
	case catcode.Space:
		s.state = stateSkippingSpaces
		return Token{Text: string([]byte{esc, ch}), Kind: KindControlSequence}, true, nil
	default:
		s.state = stateMiddleOfLine
		return Token{Text: string([]byte{esc, ch}), Kind: KindControlSequence}, true, nil
	}
}

// scanParameter handles a Parameter-classified byte: a following digit forms
// a parameter token, a doubled parameter byte collapses to one, and anything
// else is left for the next scan.
func (s *Scanner) scanParameter(p byte, line string) Token {
	s.state = stateMiddleOfLine
	if s.col < len(line) {
		ch := line[s.col]
		if ch >= '0' && ch <= '9' {
			s.col++
			return Token{Text: string([]byte{p, ch}), Kind: KindParameterToken}
		}
		if s.table.Get(ch) == catcode.Parameter {
			s.col++
		}
	}
	return Token{Text: string([]byte{p}), Kind: KindParameter}
}

// scanSuperscript decodes the ^^ notation. A doubled superscript byte
// followed by two lowercase hex digits encodes that byte value; followed by
// one byte below 128 it encodes (byte+64) mod 128. The decoded byte is
// re-classified and dispatched as if it had appeared in the input, so a
// decoded comment byte still eats the rest of the line. The lookahead never
// crosses the line boundary; anything short falls through to a literal
// superscript token.
func (s *Scanner) scanSuperscript(ch byte, line string) (Token, bool, error) {
	if s.col+1 < len(line) && s.table.Get(line[s.col]) == catcode.Superscript {
		if s.col+2 < len(line) && isLowerHex(line[s.col+1]) && isLowerHex(line[s.col+2]) {
			decoded := hexValue(line[s.col+1])<<4 | hexValue(line[s.col+2])
			s.col += 3
			return s.dispatch(decoded, line)
		}
		if next := line[s.col+1]; next < 128 {
			s.col += 2
			return s.dispatch((next+64)%128, line)
		}
	}
	s.state = stateMiddleOfLine
	return Token{Text: string([]byte{ch}), Kind: KindSuperscript}, true, nil
}

func (s *Scanner) advanceLine() {
	s.line++
	s.col = 0
}

func isLowerHex(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')
}

func hexValue(ch byte) byte {
	if ch >= 'a' {
		return ch - 'a' + 10
	}
	return ch - '0'
}
