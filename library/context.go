// Package library implements the layout directives: the functions that turn
// one parsed call's arguments into a style mutation or a layout node.
package library

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"mlc/args"
	"mlc/style"
	"mlc/value"
)

// Directive is one callable layout/style function. It consumes the call's
// arguments, may mutate the pass style, and returns a value for the
// evaluator to embed. The first error aborts only this call; style
// mutations applied before the failure point are not rolled back.
type Directive func(ctx *Context, a *args.Args) (value.Value, error)

// Context is the shared state of one document-evaluation pass: the
// cascading style the directives read and mutate, and the diagnostic sink.
// It is created per pass, never process-wide, so independent passes can run
// concurrently each with their own context.
type Context struct {
	Styles *style.Styles
	Log    *zap.Logger

	// Warnings counts non-fatal diagnostics raised during this pass.
	Warnings int
}

// NewContext creates the context for one evaluation pass. A nil logger is
// replaced with a no-op one; otherwise the logger is tagged with a fresh
// pass id so interleaved passes stay distinguishable in the log.
func NewContext(st *style.Styles, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		Styles: st,
		Log:    log.Named("eval").With(zap.String("pass", uuid.NewString()[:8])),
	}
}

// Warn records a non-fatal diagnostic (e.g. an element dropped from a
// lenient array cast).
func (ctx *Context) Warn(err error) {
	ctx.Warnings++
	ctx.Log.Warn("evaluation warning", zap.Error(err))
}

// Args creates the argument set for one call with the context's warning
// sink wired in.
func (ctx *Context) Args(span value.Span) *args.Args {
	a := args.New(span)
	a.Warn = ctx.Warn
	return a
}

// Scope returns the directive table the evaluator resolves call names
// against.
func Scope() map[string]Directive {
	return map[string]Directive{
		"page":      Page,
		"align":     Align,
		"linebreak": Linebreak,
		"parbreak":  Parbreak,
		"pagebreak": Pagebreak,
		"h":         H,
		"v":         V,
		"box":       Box,
		"block":     Block,
		"pad":       Pad,
		"stack":     Stack,
		"grid":      Grid,
	}
}
