package cmd

import "errors"

// Classification sentinels. Operational errors wrap one of these with %w so
// callers can sort failures with errors.Is instead of parsing messages.
var (
	errHostConfig  = errors.New("host configuration error")
	errCredential  = errors.New("credential error")
	errConnection  = errors.New("connection error")
	errUpload      = errors.New("upload failed")
	errRun         = errors.New("run failed")
	errAgentClosed = errors.New("agent is closed")
)
