package parser

import (
	"github.com/t14raptor/go-estree/parser/scanner"
)

// labelSet is one label in the chain of labels enclosing a statement. The
// chain is reset at function boundaries.
type labelSet struct {
	name   string
	parent *labelSet
	// iteration is set when the label applies to a loop, which makes it a
	// valid continue target.
	iteration bool
	// direct is set while the labelled statement itself is being parsed,
	// before any statement it contains.
	direct bool
}

func (p *parser) pushLabel(ctx context, labels *labelSet, name string, at position) *labelSet {
	for l := labels; l != nil; l = l.parent {
		if l.name == name {
			p.raiseAt(at, scanner.ErrLabelRedeclaration, name)
		}
	}
	l := p.labels.make()
	l.name = name
	l.parent = labels
	l.direct = true
	return l
}

// markIteration records that the labels directly in front of a loop
// statement label that loop.
func markIteration(labels *labelSet) {
	for l := labels; l != nil && l.direct; l = l.parent {
		l.iteration = true
		l.direct = false
	}
}

// settle clears the direct mark once a non-loop statement starts.
func settle(labels *labelSet) {
	for l := labels; l != nil && l.direct; l = l.parent {
		l.direct = false
	}
}

func findLabel(labels *labelSet, name string) *labelSet {
	for l := labels; l != nil; l = l.parent {
		if l.name == name {
			return l
		}
	}
	return nil
}
