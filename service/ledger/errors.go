package ledger

import (
	"fmt"
	"strings"
)

// ErrUnreachableLedger is a transient infrastructure failure talking to the
// chain. Callers must treat it as "unknown", never as "false": an auction
// whose details cannot be read has not thereby ended.
type ErrUnreachableLedger struct {
	Err error
}

func (e ErrUnreachableLedger) Error() string {
	return fmt.Sprintf("ledger unreachable: %s", e.Err)
}

func (e ErrUnreachableLedger) Unwrap() error {
	return e.Err
}

// ErrRejectedByLedger means the contract itself refused the call: a
// precondition such as "bid too low", "already ended" or "not authorized"
// failed on chain. Not retryable; the transaction did not change state.
type ErrRejectedByLedger struct {
	Reason string
	Err    error
}

func (e ErrRejectedByLedger) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("rejected by ledger: %s", e.Reason)
	}
	return fmt.Sprintf("rejected by ledger: %s", e.Err)
}

func (e ErrRejectedByLedger) Unwrap() error {
	return e.Err
}

// revert markers surfaced by nodes and by gas estimation when a call would
// fail. Anything else is assumed to be transport trouble.
var rejectionMarkers = []string{
	"execution reverted",
	"always failing transaction",
	"gas required exceeds allowance",
	"insufficient funds",
	"nonce too low",
}

func isRejection(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range rejectionMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// asLedgerError classifies a raw node error into the taxonomy above.
func asLedgerError(err error) error {
	if err == nil {
		return nil
	}
	if isRejection(err) {
		return ErrRejectedByLedger{Reason: revertReason(err), Err: err}
	}
	return ErrUnreachableLedger{Err: err}
}

func revertReason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "execution reverted:"); i >= 0 {
		return strings.TrimSpace(msg[i+len("execution reverted:"):])
	}
	return msg
}
