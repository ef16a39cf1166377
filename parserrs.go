package intexpr

import (
	"strconv"
	"strings"
)

// ErrorKind classifies a SyntaxError. ErrorKind values are themselves errors
// so that a SyntaxError can be matched with errors.Is, e.g.
// errors.Is(err, intexpr.ExtraClosingBracket).
type ErrorKind int8

const (
	// InvalidExpression is a token that cannot appear where it does, e.g. a
	// binary operator at the start of an operand.
	InvalidExpression ErrorKind = iota
	// UnknownSymbol is a rune that begins no token.
	UnknownSymbol
	// UnknownOperation is a word that starts like high or low but is neither.
	UnknownOperation
	// MissingOperation is two operands with no operator between them.
	MissingOperation
	// MissingClosingBracket is an open bracket with no matching close.
	MissingClosingBracket
	// ExtraClosingBracket is a close bracket with no open bracket.
	ExtraClosingBracket
	// IncorrectConst is an integer literal too large for 32 bits.
	IncorrectConst
	// MissingOperand is an operator with nothing to apply to.
	MissingOperand
)

var kindNames = [...]string{
	InvalidExpression:     "invalid expression",
	UnknownSymbol:         "unknown symbol",
	UnknownOperation:      "unknown operation",
	MissingOperation:      "missing operation",
	MissingClosingBracket: "missing closing bracket",
	ExtraClosingBracket:   "extra closing bracket",
	IncorrectConst:        "incorrect constant",
	MissingOperand:        "missing operand",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k ErrorKind) Error() string {
	return k.String()
}

// SyntaxError is an error indicating input that is not a well-formed
// expression. It implements InputError.
type SyntaxError struct {
	// Kind is the type of problem.
	Kind ErrorKind
	// Offset is the number of runes preceding the problem.
	Offset int
	// Text is the input that caused the problem. It is empty when the problem
	// is the end of the input.
	Text string
	// Snippet is the input within ten runes on either side of Offset.
	Snippet string
	// SnippetOffset is the position of the problem within Snippet, in runes.
	SnippetOffset int
}

func (err *SyntaxError) Error() string {
	var msg string
	switch err.Kind {
	case UnknownSymbol:
		msg = "unknown symbol " + strconv.Quote(err.Text)
	case UnknownOperation:
		msg = "unknown operation " + strconv.Quote(err.Text)
	case MissingOperation:
		msg = "missing operation before " + strconv.Quote(err.Text)
	case MissingClosingBracket:
		msg = "open bracket with no close bracket"
		if err.Text != "" {
			msg += " before " + strconv.Quote(err.Text)
		}
	case ExtraClosingBracket:
		msg = "close bracket with no open bracket"
	case IncorrectConst:
		msg = "constant " + strconv.Quote(err.Text) + " does not fit in 32 bits"
	case MissingOperand:
		switch err.Text {
		case "":
			msg = "missing operand at end of input"
		case ")":
			msg = "missing operand before \")\""
		default:
			msg = "missing operand for " + strconv.Quote(err.Text)
		}
	default:
		if err.Text == "" {
			msg = "unexpected end of input"
		} else {
			msg = "unexpected " + strconv.Quote(err.Text)
		}
	}
	return errpos(err.Offset, msg)
}

func (err *SyntaxError) Pos() int {
	return err.Offset
}

// Unwrap returns the error's Kind.
func (err *SyntaxError) Unwrap() error {
	return err.Kind
}

// Caret renders the snippet on one line and a caret pointing at the problem
// on the next.
func (err *SyntaxError) Caret() string {
	var b strings.Builder
	snip := []rune(err.Snippet)
	for _, r := range snip {
		switch r {
		case '\n', '\r', '\v', '\f':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\n')
	for i := 0; i < err.SnippetOffset && i < len(snip); i++ {
		if snip[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for i := len(snip); i < err.SnippetOffset; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes preceding
	// the token that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
