package cmd

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// uploadFiles copies every file into destDir on every host. Sequential mode
// nests file order inside host order; a failed copy aborts that host's
// remaining files, but the next host still receives everything. Parallel
// mode launches one independent task per (host, file) pair before any result
// is awaited and joins them all. Failures aggregate into a single upload
// error naming every failed pair; completed copies are never rolled back.
func (a *fleetAgent) uploadFiles(files []string, destDir string, parallel bool) ([]hostResult, error) {
	if a.closed {
		return nil, fmt.Errorf("%w: uploadFiles", errAgentClosed)
	}

	var results []hostResult
	if parallel {
		results = make([]hostResult, len(a.sessions)*len(files))
		var wg sync.WaitGroup
		for i, s := range a.sessions {
			for j, f := range files {
				wg.Add(1)
				go func(slot int, s *hostSession, f string) {
					defer wg.Done()
					err := uploadFileFunc(s.client, f, destDir)
					results[slot] = hostResult{host: s.addr, file: f, err: err}
				}(i*len(files)+j, s, f)
			}
		}
		wg.Wait()
	} else {
		for _, s := range a.sessions {
			for _, f := range files {
				err := uploadFileFunc(s.client, f, destDir)
				results = append(results, hostResult{host: s.addr, file: f, err: err})
				if err != nil {
					break
				}
			}
		}
	}

	var merr *multierror.Error
	for _, r := range results {
		if r.err != nil {
			merr = multierror.Append(merr, fmt.Errorf("host %s: file %s: %w", r.host, r.file, r.err))
		}
	}
	return results, wrapAggregate(errUpload, merr)
}
