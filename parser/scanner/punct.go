package scanner

import (
	"github.com/t14raptor/go-estree/token"
)

// pick advances past the longest of the candidates that matches at the
// cursor. Candidates are listed longest first; the last one is the
// single-byte fallback.
func (s *Scanner) pick(cands ...punct) token.Token {
	for _, c := range cands {
		if s.src.HasPrefix(c.text) {
			s.src.pos += len(c.text)
			return c.tok
		}
	}
	return token.Illegal
}

type punct struct {
	text string
	tok  token.Token
}

func (s *Scanner) scanDot() token.Token {
	if c := s.src.PeekAt(1); c >= '0' && c <= '9' {
		return s.scanNumber()
	}
	return s.pick(punct{"...", token.Ellipsis}, punct{".", token.Period})
}

func (s *Scanner) scanSlash() token.Token {
	switch s.src.PeekAt(1) {
	case '/':
		s.src.pos += 2
		s.skipLineComment()
		return skip
	case '*':
		s.src.pos += 2
		s.skipBlockComment()
		return skip
	case '=':
		s.src.pos += 2
		return token.QuotientAssign
	}
	s.src.pos++
	return token.Slash
}

func (s *Scanner) scanLess() token.Token {
	if s.src.HasPrefix("<!--") {
		if !s.htmlCommentAllowed() {
			s.fail(ErrHTMLCommentInModule)
		}
		s.src.pos += 4
		s.skipLineComment()
		return skip
	}
	return s.pick(
		punct{"<<=", token.ShiftLeftAssign},
		punct{"<<", token.ShiftLeft},
		punct{"<=", token.LessOrEqual},
		punct{"<", token.Less},
	)
}

func (s *Scanner) scanGreater() token.Token {
	return s.pick(
		punct{">>>=", token.UnsignedShiftRightAssign},
		punct{">>>", token.UnsignedShiftRight},
		punct{">>=", token.ShiftRightAssign},
		punct{">>", token.ShiftRight},
		punct{">=", token.GreaterOrEqual},
		punct{">", token.Greater},
	)
}

func (s *Scanner) scanEquals() token.Token {
	return s.pick(
		punct{"===", token.StrictEqual},
		punct{"==", token.Equal},
		punct{"=>", token.Arrow},
		punct{"=", token.Assign},
	)
}

func (s *Scanner) scanBang() token.Token {
	return s.pick(
		punct{"!==", token.StrictNotEqual},
		punct{"!=", token.NotEqual},
		punct{"!", token.Not},
	)
}

func (s *Scanner) scanPlus() token.Token {
	return s.pick(
		punct{"++", token.Increment},
		punct{"+=", token.AddAssign},
		punct{"+", token.Plus},
	)
}

func (s *Scanner) scanMinus() token.Token {
	// --> opens a comment only when nothing but trivia precedes it on its line.
	if (s.NewLine || !s.scanned) && s.src.HasPrefix("-->") {
		if !s.htmlCommentAllowed() {
			s.fail(ErrHTMLCommentInModule)
		}
		s.src.pos += 3
		s.skipLineComment()
		return skip
	}
	return s.pick(
		punct{"--", token.Decrement},
		punct{"-=", token.SubtractAssign},
		punct{"-", token.Minus},
	)
}

func (s *Scanner) scanStar() token.Token {
	return s.pick(
		punct{"**=", token.ExponentAssign},
		punct{"**", token.Exponent},
		punct{"*=", token.MultiplyAssign},
		punct{"*", token.Multiply},
	)
}

func (s *Scanner) scanPercent() token.Token {
	return s.pick(punct{"%=", token.RemainderAssign}, punct{"%", token.Remainder})
}

func (s *Scanner) scanAmpersand() token.Token {
	return s.pick(
		punct{"&&=", token.LogicalAndAssign},
		punct{"&&", token.LogicalAnd},
		punct{"&=", token.AndAssign},
		punct{"&", token.And},
	)
}

func (s *Scanner) scanPipe() token.Token {
	return s.pick(
		punct{"||=", token.LogicalOrAssign},
		punct{"||", token.LogicalOr},
		punct{"|=", token.OrAssign},
		punct{"|", token.Or},
	)
}

func (s *Scanner) scanCaret() token.Token {
	return s.pick(punct{"^=", token.ExclusiveOrAssign}, punct{"^", token.ExclusiveOr})
}

func (s *Scanner) scanQuestion() token.Token {
	if s.src.HasPrefix("?.") {
		// a?.5:b is a conditional, not an optional chain.
		if c := s.src.PeekAt(2); c < '0' || c > '9' {
			s.src.pos += 2
			return token.QuestionDot
		}
	}
	return s.pick(
		punct{"??=", token.CoalesceAssign},
		punct{"??", token.Coalesce},
		punct{"?", token.QuestionMark},
	)
}
