package extern

import "errors"

var (
	ErrInvalidCfg = errors.New("extern: invalid options")
	ErrStopped    = errors.New("extern: object is stopped")

	ErrFrozen     = errors.New("registry: declarations are frozen after setup")
	ErrNotSetup   = errors.New("registry: SetupInOut has not been called")
	ErrBadInlet   = errors.New("registry: inlet index out of range")
	ErrBadOutlet  = errors.New("registry: outlet index out of range")
	ErrBadHandler = errors.New("registry: handler must not be nil")
	ErrBadXlet    = errors.New("registry: invalid xlet declaration")

	ErrSlotRefused = errors.New("host: slot creation refused")
	ErrNoBinder    = errors.New("host: binder is required")

	ErrAlreadyBound = errors.New("bind: symbol already bound")
	ErrNotBound     = errors.New("bind: object is not bound to this symbol")
)
