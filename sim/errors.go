package sim

import "errors"

// Common errors returned by the vehicle simulator
var (
	ErrInvalidSpeed            = errors.New("ground speed must be positive")
	ErrInvalidOutputRate       = errors.New("output rate must be positive")
	ErrInvalidAcceptRadius     = errors.New("acceptance radius must be positive")
	ErrInvalidBaudRate         = errors.New("baud rate must be positive")
	ErrInvalidStartPosition    = errors.New("start position is out of range")
	ErrEmptyRoute              = errors.New("route must contain at least one waypoint")
	ErrSimulatorNotRunning     = errors.New("simulator is not running")
	ErrSimulatorAlreadyRunning = errors.New("simulator is already running")
)
