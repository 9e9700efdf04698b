package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
)

type scopeKind uint8

const (
	scopeGlobal scopeKind = iota
	scopeModule
	scopeFunctionParams
	scopeArrowParams
	scopeFunctionBody
	scopeBlock
	scopeCatchParams
	scopeCatchBody
)

// bindingKind is a set of declaration kinds recorded for one name in one
// frame.
type bindingKind uint16

const (
	bindVar bindingKind = 1 << iota
	bindLet
	bindConst
	bindClass
	bindFunctionLexical // function declaration scoped to a block or module
	bindFunctionVar     // function declaration at function or script top level
	bindParam
	bindArrowParam
	bindCatchIdent
	bindCatchPattern
	bindImport
	bindVarPassed // a var declaration hoisted through this frame

	bindLexical = bindLet | bindConst | bindClass | bindFunctionLexical | bindImport
)

// scope is one frame of the declaration chain.
type scope struct {
	parent *scope
	kind   scopeKind
	names  map[string]bindingKind
	// scopeError is a duplicate parameter error that only applies if the
	// function turns out to be strict or to have a non-simple parameter list.
	scopeError *Error
}

func (p *parser) newScope(kind scopeKind, parent *scope) *scope {
	s := p.scopes.make()
	s.kind = kind
	s.parent = parent
	return s
}

func (s *scope) isVarTarget() bool {
	return s.kind == scopeGlobal || s.kind == scopeModule || s.kind == scopeFunctionBody
}

func (s *scope) set(name string, kind bindingKind) {
	if s.names == nil {
		s.names = map[string]bindingKind{}
	}
	s.names[name] |= kind
}

// declare records a binding and fails on a conflicting declaration.
func (p *parser) declare(ctx context, s *scope, id *ast.Identifier, at position, kind bindingKind) {
	name := id.Name
	switch {
	case kind == bindVar:
		for f := s; f != nil; f = f.parent {
			existing := f.names[name]
			if existing&bindLexical != 0 {
				p.raiseAt(at, scanner.ErrDuplicateBinding, name)
			}
			if f.kind == scopeCatchParams && existing != 0 {
				if existing&bindCatchPattern != 0 || !ctx.webCompat() {
					p.raiseAt(at, scanner.ErrDuplicateBinding, name)
				}
			}
			if f.isVarTarget() {
				f.set(name, bindVar)
				return
			}
			if f.kind == scopeCatchParams || f.kind == scopeFunctionParams || f.kind == scopeArrowParams {
				continue
			}
			f.set(name, bindVarPassed)
		}

	case kind == bindFunctionVar:
		if s.names[name]&bindLexical != 0 {
			p.raiseAt(at, scanner.ErrDuplicateBinding, name)
		}
		s.set(name, bindFunctionVar)

	case kind == bindParam:
		if s.names[name] != 0 && s.scopeError == nil {
			s.scopeError = p.errorAt(at, scanner.ErrDuplicateParameter, name)
		}
		s.set(name, bindParam)

	case kind == bindArrowParam:
		if s.names[name] != 0 {
			p.raiseAt(at, scanner.ErrDuplicateParameter, name)
		}
		s.set(name, bindArrowParam)

	case kind == bindCatchIdent || kind == bindCatchPattern:
		if s.names[name] != 0 {
			p.raiseAt(at, scanner.ErrDuplicateBinding, name)
		}
		s.set(name, kind)

	default:
		if existing := s.names[name]; existing != 0 {
			// Sloppy web code may declare the same plain function twice in a block.
			annexB := kind == bindFunctionLexical && existing == bindFunctionLexical &&
				s.kind == scopeBlock && ctx.webCompat()
			if !annexB {
				p.raiseAt(at, scanner.ErrDuplicateBinding, name)
			}
		}
		if s.parent != nil {
			switch {
			case s.kind == scopeFunctionBody && s.parent.names[name]&(bindParam|bindArrowParam) != 0:
				p.raiseAt(at, scanner.ErrDuplicateBinding, name)
			case s.kind == scopeCatchBody && s.parent.names[name] != 0:
				p.raiseAt(at, scanner.ErrShadowedCatchClause, name)
			}
		}
		s.set(name, kind)
	}
}

// checkForOfVar rejects a for-of var binding that redeclares an enclosing
// catch parameter. Web compatibility only covers the other var forms.
func (p *parser) checkForOfVar(s *scope, names []boundName) {
	for _, n := range names {
		for f := s; f != nil && !f.isVarTarget(); f = f.parent {
			if f.kind == scopeCatchParams && f.names[n.name]&bindCatchIdent != 0 {
				p.raiseAt(n.at, scanner.ErrShadowedCatchClause, n.name)
			}
		}
	}
}

// has reports whether the frame declares name in any way.
func (s *scope) has(name string) bool {
	return s.names[name]&^bindVarPassed != 0
}
