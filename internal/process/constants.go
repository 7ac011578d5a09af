package process

import "time"

// DefaultInactivityTimeout applies when the controller is built with a zero timeout
const DefaultInactivityTimeout = 2 * time.Minute

// stateLineBuffer sizes the channel between a process reader and its supervisor
const stateLineBuffer = 64

// maxLineSize caps one stdout line; longer output is drained without parsing
const maxLineSize = 1024 * 1024

const drainChunkSize = 32 * 1024

// pipeWaitDelay bounds how long Wait waits on stderr held open by an orphaned descendant
const pipeWaitDelay = 2 * time.Second

// Log messages
const (
	LogMsgFightStarting     = "Starting fight process"
	LogMsgFightLaunched     = "Fight process launched"
	LogMsgLaunchFailed      = "Failed to launch fight process"
	LogMsgLineIgnored       = "Ignoring process output line"
	LogMsgStateRecordFailed = "Failed to record fight state"
	LogMsgProcessExited     = "Fight process exited"
	LogMsgExitIgnored       = "Fight already finished, ignoring process exit"
	LogMsgFinishFailed      = "Failed to finish fight after process exit"
	LogMsgInactivityTimeout = "Fight process inactive, killing"
	LogMsgKillFailed        = "Failed to kill fight process"
	LogMsgShuttingDown      = "Shutting down fight processes"
	LogMsgStderr            = "Fight process stderr"
)

// Error contexts
const (
	ErrContextFailedToStart    = "failed to start fight"
	ErrContextFailedToMarkFail = "failed to mark fight failed"
	ErrMsgControllerShutdown   = "process controller is shut down"
)
