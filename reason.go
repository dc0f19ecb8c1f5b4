package gmpcoro

// reasonCode is why a task handed control back to its worker: it is the
// value carried over the task's trampoline, the Go-channel stand-in for the
// original's CO_SCHEDULE/CO_YIELD/CO_EXIT/CO_WAIT/CO_SEM_WAIT trap ids.
type reasonCode int

const (
	reasonSchedule reasonCode = iota
	reasonYield
	reasonExit
	reasonWait
	reasonSemWait
)

func (r reasonCode) String() string {
	switch r {
	case reasonSchedule:
		return "SCHEDULE"
	case reasonYield:
		return "YIELD"
	case reasonExit:
		return "EXIT"
	case reasonWait:
		return "WAIT"
	case reasonSemWait:
		return "SEM_WAIT"
	default:
		return "UNKNOWN"
	}
}
