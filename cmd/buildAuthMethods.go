package cmd

import (
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// buildAuthMethods assembles the SSH authentication methods once, up front,
// so bad key material fails construction before any connection is attempted.
func buildAuthMethods(pemFile, passphrase, password string) ([]ssh.AuthMethod, error) {
	var auths []ssh.AuthMethod

	if pemFile != "" {
		signer, err := loadSigner(pemFile, passphrase)
		if err != nil {
			return nil, fmt.Errorf("load key %s: %w", pemFile, err)
		}
		auths = append(auths, ssh.PublicKeys(signer))
	}

	if password != "" {
		auths = append(auths, ssh.Password(password))
	}

	// Try SSH agent if available
	if a := os.Getenv("SSH_AUTH_SOCK"); a != "" {
		if conn, err := net.Dial("unix", a); err == nil {
			ag := agent.NewClient(conn)
			auths = append(auths, ssh.PublicKeysCallback(ag.Signers))
		}
	}

	if len(auths) == 0 {
		return nil, errors.New("no usable authentication method (provide --pem-file, --password, or an SSH agent)")
	}
	return auths, nil
}
