package cmd

import (
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// dialSSH establishes an SSH client connection to a single host using the
// prepared authentication methods.
func dialSSH(addr, user string, auths []ssh.AuthMethod, knownHostsPath string, strictHost bool, dialTimeout time.Duration) (*ssh.Client, error) {
	hostKeyCB, err := hostKeyCallback(knownHostsPath, strictHost)
	if err != nil {
		return nil, err
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            auths,
		HostKeyCallback: hostKeyCB,
		Timeout:         dialTimeout,
	}

	// Use explicit net.Dialer for connection timeout
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, cfg)
	if err != nil {
		return nil, err
	}
	return ssh.NewClient(c, chans, reqs), nil
}
