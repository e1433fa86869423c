package firmata

import "fmt"

// ArgumentError reports a programmer error on the encode side: a device
// id, group, group size or AccelStepper interface argument outside the
// protocol's valid range. Pin numbers are not range-checked. Per spec §7 these are fatal conditions the caller must fix, not
// something the codec retries or papers over.
type ArgumentError struct {
	Func string
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("firmata: %s: %s", e.Func, e.Msg)
}

func argErrorf(fn, format string, args ...any) error {
	return &ArgumentError{Func: fn, Msg: fmt.Sprintf(format, args...)}
}
