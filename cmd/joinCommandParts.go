package cmd

import "strings"

// joinCommandParts joins repeated -c fragments with "; " so the remote shell
// executes them in order within a single invocation, regardless of whether
// the local fan-out is sequential or parallel. The separator assumes a POSIX
// shell on the remote side.
func joinCommandParts(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "; ")
}
