package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// writeTemp creates a temp file with content and returns its path.
func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// resetConfig clears global configuration so tests don't leak state
func resetConfig() {
	viper.Reset()
	viper.SetEnvPrefix("EC2")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	// Reset flags to defaults and clear Changed status. Array-valued flags
	// are skipped (their Set appends) and cleared by hand below.
	for _, fs := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(), runCmd.Flags(), uploadCmd.Flags(), installCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.DefValue != "[]" {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	cfgHosts = ""
	cfgFleetPath = ""
	cfgUser = ""
	cfgPemFile = ""
	cfgPassphrase = ""
	cfgPassword = ""
	cfgKnownHosts = ""
	cfgStrictHost = true
	cfgConnTimeout = 0
	cfgCheck = true
	cfgParallel = false
	cfgOutPath = ""
	cfgCommandParts = nil
	cfgUploadFiles = nil
	cfgDestDir = ""
	cfgInstallPubKeyPath = ""
}

// stubDialOK replaces dialSSHFunc with one that always reports success.
// The nil *ssh.Client is safe: the wrapper guards it and the run/upload
// stubs installed by tests never touch the transport.
func stubDialOK(t *testing.T) *int {
	t.Helper()
	orig := dialSSHFunc
	t.Cleanup(func() { dialSSHFunc = orig })
	calls := new(int)
	dialSSHFunc = func(addr, user string, auths []ssh.AuthMethod, knownHostsPath string, strictHost bool, dialTimeout time.Duration) (*ssh.Client, error) {
		*calls++
		return nil, nil
	}
	return calls
}

// stubRun replaces runRemoteCommandFunc for the duration of the test.
func stubRun(t *testing.T, fn func(client sessionClient, cmd string) ([]byte, int, error)) {
	t.Helper()
	orig := runRemoteCommandFunc
	t.Cleanup(func() { runRemoteCommandFunc = orig })
	runRemoteCommandFunc = fn
}

// stubUpload replaces uploadFileFunc for the duration of the test.
func stubUpload(t *testing.T, fn func(client sessionClient, localPath, destDir string) error) {
	t.Helper()
	orig := uploadFileFunc
	t.Cleanup(func() { uploadFileFunc = orig })
	uploadFileFunc = fn
}

// Fake session and client for runRemoteCommand and upload tests. Like a real
// scp sink, CombinedOutput does not return until stdin has been closed when a
// stdin pipe was requested.
type fakeSession struct {
	out       []byte
	err       error
	delay     time.Duration
	closed    bool
	lastCmd   string
	stdin     bytes.Buffer
	stdinDone chan struct{}
}

func (f *fakeSession) CombinedOutput(cmd string) ([]byte, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.lastCmd = cmd
	if f.stdinDone != nil {
		<-f.stdinDone
	}
	return f.out, f.err
}

func (f *fakeSession) StdinPipe() (io.WriteCloser, error) {
	f.stdinDone = make(chan struct{})
	return &signalingWriteCloser{w: &f.stdin, done: f.stdinDone}, nil
}

func (f *fakeSession) Close() error { f.closed = true; return nil }

type signalingWriteCloser struct {
	w    io.Writer
	done chan struct{}
}

func (c *signalingWriteCloser) Write(p []byte) (int, error) { return c.w.Write(p) }

func (c *signalingWriteCloser) Close() error { close(c.done); return nil }

type fakeClient struct {
	sess     *fakeSession
	newErr   error
	closeErr error
	closes   int
}

func (c *fakeClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	return c.sess, nil
}

func (c *fakeClient) Close() error { c.closes++; return c.closeErr }

func TestRoot_NoHostsConfigured(t *testing.T) {
	resetConfig()
	stubDialOK(t)
	t.Setenv("EC2_HOSTS", "")

	rootCmd.SetArgs([]string{"run", "--password", "x", "-c", "uptime"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.True(t, errors.Is(err, errHostConfig))
}

func TestRoot_CredentialErrorBeforeDial(t *testing.T) {
	resetConfig()
	dials := stubDialOK(t)
	t.Setenv("SSH_AUTH_SOCK", "")

	rootCmd.SetArgs([]string{"run", "--hosts", "10.0.0.1", "--pem-file", "/nonexistent/key.pem", "-c", "uptime"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.True(t, errors.Is(err, errCredential))
	require.Equal(t, 0, *dials)
}
