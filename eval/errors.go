package eval

import (
	"fmt"

	"github.com/lll-lang/lll/object"
	"github.com/lll-lang/lll/parser"
)

// createError builds a *object.Error enriched with the current file, the
// node's position, and a snapshot of the call-frame stack at throw time
// (spec.md §4.4's "error enrichment"). The bare Message is what try/catch
// ultimately binds; FullString (via Kind/File/Line/Column/Frames) is what
// an uncaught error renders as at the top level.
func (ev *Evaluator) createError(node parser.Node, kind, format string, args ...interface{}) *object.Error {
	pos := node.Pos()
	frames := make([]string, len(ev.Frames))
	for i, f := range ev.Frames {
		frames[i] = fmt.Sprintf("at %s (%s:%d:%d)", f.Name, f.File, f.Line, f.Column)
	}
	// ev.Frames is pushed outermost call first; reverse it so frames render
	// innermost-first (most recent call first) and outermost-last.
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return &object.Error{
		Message: fmt.Sprintf(format, args...),
		Kind:    kind,
		File:    ev.File,
		Line:    pos.Line,
		Column:  pos.Column,
		Frames:  frames,
	}
}

// budgetExceeded reports the step-budget abort as an ordinary RuntimeError
// at the site of the step that tripped it (spec.md §4.4/§5/§8 property 11).
func (ev *Evaluator) budgetExceeded(node parser.Node) *object.Error {
	return ev.createError(node, "RuntimeError", "execution limit exceeded")
}
