package intexpr

import (
	"strconv"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	// val is the value of a tokenConst.
	val int32
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenAdd, tokenSub, tokenMul, and tokenDiv are binary operators.
	tokenAdd
	tokenSub
	tokenMul
	tokenDiv
	// tokenNeg is a unary minus that does not begin a negative constant.
	tokenNeg
	// tokenHigh and tokenLow are the keyword operators high and low.
	tokenHigh
	tokenLow
	tokenOpen
	tokenClose
	// tokenConst is an integer literal, possibly negative.
	tokenConst
	// tokenVar is one of the variables x, y, z.
	tokenVar
)

var tokenNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenAdd:   "Add",
	tokenSub:   "Sub",
	tokenMul:   "Mul",
	tokenDiv:   "Div",
	tokenNeg:   "Neg",
	tokenHigh:  "High",
	tokenLow:   "Low",
	tokenOpen:  "Open",
	tokenClose: "Close",
	tokenConst: "Const",
	tokenVar:   "Var",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// operand returns whether a token of kind k ends an operand, so that a
// following minus is subtraction.
func (k tokenKind) operand() bool {
	return k == tokenConst || k == tokenVar || k == tokenClose
}

// starts returns whether a token of kind k begins an operand.
func (k tokenKind) starts() bool {
	switch k {
	case tokenConst, tokenVar, tokenOpen, tokenNeg, tokenHigh, tokenLow:
		return true
	default:
		return false
	}
}

// lexer scans one expression. tok is the current token; next replaces it.
type lexer struct {
	src   []rune
	i     int
	depth int
	tok   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// next scans the next token from the input and makes it current. Once the
// input is exhausted, every call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	prev := l.tok.kind
	for l.i < len(l.src) && unicode.IsSpace(l.src[l.i]) {
		l.i++
	}
	tok := lexToken{pos: l.i}
	if l.i >= len(l.src) {
		tok.kind = tokenEOF
		l.tok = tok
		return tok, nil
	}
	r := l.src[l.i]
	switch {
	case r == '+':
		tok.kind = tokenAdd
		l.i++
	case r == '*':
		tok.kind = tokenMul
		l.i++
	case r == '/':
		tok.kind = tokenDiv
		l.i++
	case r == '-':
		switch {
		case prev.operand():
			tok.kind = tokenSub
			l.i++
		case l.i+1 == len(l.src):
			return tok, l.error(MissingOperand, tok.pos, "-")
		case isdigit(l.src[l.i+1]):
			if err := l.scanNum(&tok); err != nil {
				return tok, err
			}
		default:
			tok.kind = tokenNeg
			l.i++
		}
	case r == '(':
		tok.kind = tokenOpen
		l.depth++
		l.i++
	case r == ')':
		if l.depth <= 0 {
			return tok, l.error(ExtraClosingBracket, tok.pos, ")")
		}
		tok.kind = tokenClose
		l.depth--
		l.i++
	case r == 'h':
		if err := l.scanKeyword(&tok, "high", tokenHigh); err != nil {
			return tok, err
		}
	case r == 'l':
		if err := l.scanKeyword(&tok, "low", tokenLow); err != nil {
			return tok, err
		}
	case isdigit(r):
		if err := l.scanNum(&tok); err != nil {
			return tok, err
		}
	case r == 'x', r == 'y', r == 'z':
		tok.kind = tokenVar
		l.i++
	default:
		return tok, l.error(UnknownSymbol, tok.pos, string(r))
	}
	tok.text = string(l.src[tok.pos:l.i])
	if prev.operand() && tok.kind.starts() {
		return tok, l.error(MissingOperation, tok.pos, tok.text)
	}
	l.tok = tok
	return tok, nil
}

// scanNum scans an optionally negative decimal literal that fits in 32 bits.
func (l *lexer) scanNum(tok *lexToken) error {
	start := l.i
	if l.src[l.i] == '-' {
		l.i++
	}
	for l.i < len(l.src) && isdigit(l.src[l.i]) {
		l.i++
	}
	text := string(l.src[start:l.i])
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return l.error(IncorrectConst, start, text)
	}
	tok.kind = tokenConst
	tok.val = int32(v)
	return nil
}

// scanKeyword scans a keyword operator, which must be followed by whitespace,
// a minus sign, or an open bracket.
func (l *lexer) scanKeyword(tok *lexToken, word string, kind tokenKind) error {
	for j, c := range word {
		if l.i+j >= len(l.src) || l.src[l.i+j] != c {
			return l.error(UnknownOperation, tok.pos, l.word(tok.pos))
		}
	}
	l.i += len(word)
	if l.i >= len(l.src) {
		return l.error(MissingOperand, l.i, word)
	}
	if r := l.src[l.i]; !unicode.IsSpace(r) && r != '-' && r != '(' {
		return l.error(UnknownOperation, tok.pos, l.word(tok.pos))
	}
	tok.kind = kind
	return nil
}

// word returns the run of letters and digits starting at pos, for error
// messages. The result is never empty unless pos is at the end of input.
func (l *lexer) word(pos int) string {
	end := pos
	for end < len(l.src) && (unicode.IsLetter(l.src[end]) || unicode.IsDigit(l.src[end])) {
		end++
	}
	if end == pos && end < len(l.src) {
		end++
	}
	return string(l.src[pos:end])
}

func isdigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// error creates a syntax error at pos with a snippet of the surrounding
// input.
func (l *lexer) error(kind ErrorKind, pos int, text string) error {
	lo, hi := pos-snippetRadius, pos+snippetRadius
	if lo < 0 {
		lo = 0
	}
	if hi > len(l.src) {
		hi = len(l.src)
	}
	if lo > hi {
		lo = hi
	}
	return &SyntaxError{
		Kind:          kind,
		Offset:        pos,
		Text:          text,
		Snippet:       string(l.src[lo:hi]),
		SnippetOffset: pos - lo,
	}
}

// snippetRadius is the number of runes on each side of an error position
// included in its snippet.
const snippetRadius = 10
