package formatter

import (
	"fmt"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FaultTrace renders the message of err followed by its call stack, one
// frame per function/file:line pair. The outermost github.com/pkg/errors
// stack in the chain is used; errors without one get the stack of the
// logging call.
func FaultTrace(err error) string {
	if err == nil {
		return "<nil>"
	}
	var st stackTracer
	if !errors.As(err, &st) {
		st = errors.WithStack(err).(stackTracer)
	}
	return err.Error() + fmt.Sprintf("%+v", st.StackTrace())
}
