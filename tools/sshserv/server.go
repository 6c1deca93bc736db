package sshserv

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// Start launches a test SSH server listening on listenAddr (e.g., 127.0.0.1:20622).
// It accepts any user with no authentication. For an exec session it emulates
// two behaviors the CLI exercises:
//   - "scp -t <dir>" runs a minimal scp sink that acknowledges the protocol
//     messages and drains the file payload, so uploads complete cleanly;
//   - any other command writes "ok\n" and exits 0.
//
// Returns a stop function that closes the listener and waits for shutdown.
func Start(listenAddr string) (func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	_ = sc
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, reqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, reqs)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	for req := range in {
		switch req.Type {
		case "pty-req", "shell":
			_ = req.Reply(true, nil)
		case "exec":
			cmdline := ""
			if len(req.Payload) >= 4 {
				n := binary.BigEndian.Uint32(req.Payload)
				if int(n)+4 <= len(req.Payload) {
					cmdline = string(req.Payload[4 : 4+n])
				}
			}
			_ = req.Reply(true, nil)
			runExec(ch, cmdline)
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}

func runExec(ch ssh.Channel, cmdline string) {
	if strings.HasPrefix(cmdline, "scp -t") {
		scpSink(ch)
		sendExit(ch, 0)
		return
	}
	_, _ = ch.Write([]byte("ok\n"))
	sendExit(ch, 0)
}

// scpSink acknowledges scp protocol messages and drains file payloads.
func scpSink(ch ssh.Channel) {
	_, _ = ch.Write([]byte{0})
	br := bufio.NewReader(ch)
	for {
		header, err := br.ReadString('\n')
		if err != nil {
			return
		}
		var mode string
		var size int64
		var name string
		if _, err := fmt.Sscanf(header, "C%s %d %s", &mode, &size, &name); err != nil {
			return
		}
		_, _ = ch.Write([]byte{0})
		// Payload plus the trailing NUL confirmation byte
		if _, err := io.CopyN(io.Discard, br, size+1); err != nil {
			return
		}
		_, _ = ch.Write([]byte{0})
	}
}

func sendExit(ch ssh.Channel, code int) {
	status := struct{ Status uint32 }{uint32(code)}
	_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
	_ = ch.Close()
}
