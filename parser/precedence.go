package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

// parseBinary parses binary and logical operators whose binding power is
// above minPrec.
//
// Binding powers use the encoding of token.Precedence: the loop breaks on
// lbp <= minPrec and the right operand is parsed with lbp ^ 1, which makes
// even (left-associative) levels break at the same level and odd
// (right-associative) levels continue.
//
// See: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
func (p *parser) parseBinary(ctx context, minPrec token.Precedence) ast.Expression {
	start := p.start()
	left := p.parseUnary(ctx)
	return p.parseBinaryRest(ctx, start, left, minPrec)
}

func (p *parser) parseBinaryRest(ctx context, start position, left ast.Expression, minPrec token.Precedence) ast.Expression {
	for {
		if p.isBareArrow(left) {
			return left
		}
		op := p.tok
		prec := op.Precedence()
		if op == token.In && ctx.has(ctxDisallowIn) {
			prec = token.PrecedenceLowest
		}
		if prec <= minPrec {
			if _, ok := left.(*ast.PrivateIdentifier); ok {
				p.unexpected()
			}
			return left
		}

		if _, ok := left.(*ast.PrivateIdentifier); ok && op != token.In {
			p.unexpected()
		}
		if op == token.Exponent && !p.isParenthesized(left) {
			switch left.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.raiseAt(start, scanner.ErrUnaryExpressionsAsLHSOfExponent)
			}
		}
		p.next(ctx)

		rightStart := p.start()
		right := p.parseBinaryRest(ctx, rightStart, p.parseUnary(ctx), prec^1)
		if _, ok := right.(*ast.PrivateIdentifier); ok {
			p.raiseAt(rightStart, scanner.ErrUnexpectedToken, "#"+right.(*ast.PrivateIdentifier).Name)
		}

		if op.IsLogical() {
			if p.mixesCoalesce(op, left) || p.mixesCoalesce(op, right) {
				p.raiseAt(start, scanner.ErrCoalesceMixedWithLogical)
			}
			left = &ast.LogicalExpression{
				Range:    p.finish(start),
				Operator: op.String(),
				Left:     left,
				Right:    right,
			}
		} else {
			left = &ast.BinaryExpression{
				Range:    p.finish(start),
				Operator: op.String(),
				Left:     left,
				Right:    right,
			}
		}
		p.assignable = false
	}
}

// mixesCoalesce reports whether operand is an unparenthesized logical
// expression that cannot be combined with op: ?? never mixes with && or ||.
func (p *parser) mixesCoalesce(op token.Token, operand ast.Expression) bool {
	l, ok := operand.(*ast.LogicalExpression)
	if !ok || p.isParenthesized(l) {
		return false
	}
	return (op == token.Coalesce) != (l.Operator == "??")
}
