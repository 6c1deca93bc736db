package cmd

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// runCommand executes command on every host. Sequential mode visits hosts in
// list order and continues past per-host failures. Parallel mode launches one
// task per host before any result is awaited; every launched task runs to
// completion even when a sibling has already failed. Either way the failures
// are collected into a single aggregate run error, and results come back in
// host list order.
func (a *fleetAgent) runCommand(command string, parallel bool) ([]hostResult, error) {
	if a.closed {
		return nil, fmt.Errorf("%w: runCommand", errAgentClosed)
	}

	results := make([]hostResult, len(a.sessions))
	if parallel {
		var wg sync.WaitGroup
		for i, s := range a.sessions {
			wg.Add(1)
			go func(i int, s *hostSession) {
				defer wg.Done()
				results[i] = runOnHost(s, command)
			}(i, s)
		}
		wg.Wait()
	} else {
		for i, s := range a.sessions {
			results[i] = runOnHost(s, command)
		}
	}

	var merr *multierror.Error
	for _, r := range results {
		if r.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("host %s: %w", r.host, r.err))
		}
	}
	return results, wrapAggregate(errRun, merr)
}

// runOnHost executes command over one host's session and records the outcome.
func runOnHost(s *hostSession, command string) hostResult {
	out, code, err := runRemoteCommandFunc(s.client, command)
	return hostResult{host: s.addr, output: out, exitCode: code, err: err}
}
