package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Quest Reset Worker
// ============================================================================

// Log messages for quest reset worker operations
const (
	LogMsgResetCheckStarting = "Quest reset check starting"
	LogMsgResetCheckFailed   = "Quest reset check failed"
	LogMsgResetWorkerStarted = "Quest reset worker started"
	LogMsgResetWorkerStopped = "Quest reset worker shutdown complete"
	LogMsgResetWorkerTimeout = "Quest reset worker shutdown timeout, a check may still be running"
)
