package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Default pool sizing for the application
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 64
)
