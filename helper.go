package logcontent

import (
	stderrs "errors"
	"strings"

	smerrors "github.com/Station-Manager/errors"
)

// maxChainDepth bounds the cause walk.
const maxChainDepth = 50

// ErrorText renders an error with its message at Error, Warn and Info. At
// Debug and Trace it renders the whole cause chain, outermost first,
// joined by " -> ", with the innermost Station-Manager op appended in
// brackets when one is known.
func ErrorText() Renderer[error] {
	return func(err error, level Level) string {
		if err == nil {
			return nilText
		}
		switch level {
		case DebugLevel, TraceLevel:
			chain := causeChain(err)
			if op := chain.rootOp(); op != emptyString {
				return chain.history() + " [" + op + "]"
			}
			return chain.history()
		default:
			return err.Error()
		}
	}
}

// chainLink is one error in a cause chain. op is set only for
// Station-Manager DetailedError links.
type chainLink struct {
	msg string
	op  string
}

type errorChain []chainLink

// causeChain unwraps err outermost first. DetailedError.Cause is preferred
// over errors.Unwrap; a repeated plain message ends the walk.
func causeChain(err error) errorChain {
	var chain errorChain
	seen := make(map[string]struct{})
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, chainLink{msg: dErr.Error(), op: string(dErr.Op())})
			err = dErr.Cause()
			continue
		}
		msg := err.Error()
		if _, dup := seen[msg]; dup {
			break
		}
		seen[msg] = struct{}{}
		chain = append(chain, chainLink{msg: msg})
		err = stderrs.Unwrap(err)
	}
	return chain
}

// root is the innermost message.
func (c errorChain) root() string {
	if len(c) == 0 {
		return emptyString
	}
	return c[len(c)-1].msg
}

// rootOp is the innermost non-empty op.
func (c errorChain) rootOp() string {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].op != emptyString {
			return c[i].op
		}
	}
	return emptyString
}

func (c errorChain) history() string {
	msgs := make([]string, len(c))
	for i, link := range c {
		msgs[i] = link.msg
	}
	return strings.Join(msgs, " -> ")
}
