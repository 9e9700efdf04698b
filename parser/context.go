package parser

import (
	"github.com/t14raptor/go-estree/parser/scanner"
)

// context is the set of grammar parameters in effect. It is passed by value
// down the recursive descent so nested constructs restore it on return.
type context uint32

const (
	// The first three bits are the scanner.Mode bits.
	ctxStrict context = 1 << iota
	ctxModule
	ctxDisableWebCompat

	ctxNext
	ctxReturn       // return statements are allowed
	ctxYield        // yield is an operator (generator body)
	ctxAwait        // await is an operator (async body, module top level)
	ctxParams       // formal parameters: yield and await expressions are errors
	ctxDisallowIn   // `in` is not a binary operator (for-statement heads)
	ctxIteration    // unlabeled continue is allowed
	ctxSwitch       // unlabeled break is allowed without an iteration
	ctxSuperProperty
	ctxSuperCall
	ctxNewTarget
	ctxClassField  // field initializer or static block: arguments is an error
	ctxStaticBlock // await is reserved
)

func (c context) mode() scanner.Mode {
	return scanner.Mode(c & (ctxStrict | ctxModule | ctxDisableWebCompat))
}

func (c context) has(f context) bool { return c&f != 0 }

func (c context) webCompat() bool { return c&(ctxStrict|ctxDisableWebCompat) == 0 }

// functionBody returns the context for the parameters and body of an
// ordinary function. Labels, loops, switches and the super and new.target
// permissions of the enclosing code do not cross a function boundary.
func (c context) functionBody(async, generator bool) context {
	c &^= ctxYield | ctxAwait | ctxParams | ctxDisallowIn | ctxIteration | ctxSwitch |
		ctxSuperProperty | ctxSuperCall | ctxClassField | ctxStaticBlock
	c |= ctxReturn | ctxNewTarget
	if async {
		c |= ctxAwait
	}
	if generator {
		c |= ctxYield
	}
	return c
}
