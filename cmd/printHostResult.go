package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// printHostResult echoes one host's command output beneath a host banner.
func printHostResult(w io.Writer, r hostResult) {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "===== %s (exit %d)\n", r.host, r.exitCode)
	if r.err != nil {
		_, _ = fmt.Fprintf(bw, "error: %v\n", r.err)
	}
	if len(r.output) > 0 {
		_, _ = bw.Write(r.output)
		if !bytes.HasSuffix(r.output, []byte("\n")) {
			_, _ = bw.WriteString("\n")
		}
	}
	_ = bw.Flush()
}
