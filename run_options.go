package go_moip

import (
	"github.com/stremovskyy/go-moip/instruction"
	"github.com/stremovskyy/go-moip/internal/xmlutil"
	"github.com/stremovskyy/go-moip/log"
)

// RunOption controls behavior of a single SDK call.
type RunOption func(*runOptions)

// SkippedCall describes a call DryRun kept from reaching MoIP.
type SkippedCall struct {
	Method string
	URL    string
	// OwnID is the instruction's ownId for Send/Checkout and the token for Query.
	OwnID string
	// Instruction is nil for Query.
	Instruction *instruction.Instruction
}

// DryRunHandler receives every skipped call.
type DryRunHandler func(SkippedCall)

type runOptions struct {
	dryRun  DryRunHandler
	skipped bool
}

var dryRunLogger = log.NewDefault()

// DryRun skips the HTTP call after validation and payload mapping have run.
// Without a handler the skipped call is logged with its XML body.
func DryRun(handler ...DryRunHandler) RunOption {
	return func(o *runOptions) {
		o.skipped = true
		o.dryRun = logSkippedCall
		if len(handler) > 0 && handler[0] != nil {
			o.dryRun = handler[0]
		}
	}
}

// skipCall applies runOpts and reports whether call must not be sent.
func skipCall(runOpts []RunOption, call SkippedCall) bool {
	var o runOptions
	for _, opt := range runOpts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.skipped {
		return false
	}
	o.dryRun(call)
	return true
}

func logSkippedCall(call SkippedCall) {
	dryRunLogger.Infof("[MoIP] dry run: %s %s ownId=%s", call.Method, call.URL, call.OwnID)
	if call.Instruction == nil {
		return
	}
	body, err := xmlutil.MarshalIndent(call.Instruction)
	if err != nil {
		dryRunLogger.Warnf("[MoIP] dry run: cannot render instruction: %v", err)
		return
	}
	dryRunLogger.Infof("[MoIP] dry run body:\n%s", body)
}
