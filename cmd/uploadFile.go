package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// uploadFile copies a local file into destDir on the remote host through the
// remote scp sink ("scp -t"). The file keeps its base name and permission
// bits. Each call uses its own session, so uploads to the same host never
// share a session.
func uploadFile(client sessionClient, localPath, destDir string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat source file: %w", err)
	}

	sess, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() { _ = sess.Close() }()

	w, err := sess.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	go func() {
		defer func() { _ = w.Close() }()
		_, _ = fmt.Fprintf(w, "C%#o %d %s\n", stat.Mode().Perm(), stat.Size(), filepath.Base(localPath))
		_, _ = io.Copy(w, f)
		_, _ = fmt.Fprint(w, "\x00")
	}()

	cmd := fmt.Sprintf("scp -t %s", shellQuote(destDir))
	if out, err := sess.CombinedOutput(cmd); err != nil {
		return fmt.Errorf("scp failed: %w, output: %s", err, string(out))
	}
	return nil
}
