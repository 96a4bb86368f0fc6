// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package deploy

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// ErrUnknownHost is returned when the remote host key is not in known_hosts.
var ErrUnknownHost = errors.New("unknown host key")

// Options describe the deploy target.
type Options struct {
	Host string
	Port int
	User string
	// KeyFile is a private key used before falling back to the ssh agent.
	KeyFile string
	// KnownHosts defaults to ~/.ssh/known_hosts.
	KnownHosts string
	// Path is the remote directory that serves the site.
	Path string
}

func (o Options) addr() string {
	port := o.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(o.Host, strconv.Itoa(port))
}

func (o Options) knownHostsFile() (string, error) {
	if o.KnownHosts != "" {
		return o.KnownHosts, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ssh", "known_hosts"), nil
}

// hostKeyCallback checks keys against known_hosts and reports unknown hosts
// as ErrUnknownHost so callers can offer TrustHost.
func (o Options) hostKeyCallback() (ssh.HostKeyCallback, error) {
	file, err := o.knownHostsFile()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return func(hostname string, _ net.Addr, _ ssh.PublicKey) error {
			return fmt.Errorf("%w: %s (no %s)", ErrUnknownHost, hostname, file)
		}, nil
	}
	check, err := knownhosts.New(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		err := check(hostname, remote, key)
		var kerr *knownhosts.KeyError
		if errors.As(err, &kerr) {
			if len(kerr.Want) == 0 {
				return fmt.Errorf("%w: %s", ErrUnknownHost, hostname)
			}
			return fmt.Errorf("host key mismatch for %s, presented %s: %w", hostname, ssh.FingerprintSHA256(key), err)
		}
		return err
	}, nil
}

// Dial connects to the target and opens an sftp session. The key file is
// tried first; the ssh agent is used when no key is configured or the key is
// rejected.
func Dial(o Options) (*SFTPRemote, error) {
	if o.Host == "" {
		return nil, errors.New("no deploy host configured")
	}
	callback, err := o.hostKeyCallback()
	if err != nil {
		return nil, err
	}
	addr := o.addr()

	var client *ssh.Client
	var keyErr error
	if o.KeyFile != "" {
		pem, err := os.ReadFile(o.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(pem)
		if err != nil {
			return nil, fmt.Errorf("unable to parse private key: %w", err)
		}
		client, keyErr = ssh.Dial("tcp", addr, clientConfig(o.User, ssh.PublicKeys(signer), callback))
		if keyErr != nil && !strings.Contains(keyErr.Error(), "unable to authenticate") {
			return nil, fmt.Errorf("connection with key file failed: %w", keyErr)
		}
	}

	if client == nil {
		agentClient := getSSHAgent()
		if agentClient == nil {
			if keyErr != nil {
				return nil, fmt.Errorf("key authentication failed and no ssh agent available: %w", keyErr)
			}
			return nil, errors.New("no authentication method available (no key file and no ssh agent)")
		}
		client, err = ssh.Dial("tcp", addr, clientConfig(o.User, ssh.PublicKeysCallback(agentClient.Signers), callback))
		if err != nil {
			return nil, fmt.Errorf("connection with ssh agent failed: %w", err)
		}
	}

	sc, err := sftp.NewClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create sftp client: %w", err)
	}
	return &SFTPRemote{ssh: client, sftp: sc}, nil
}

func clientConfig(user string, auth ssh.AuthMethod, callback ssh.HostKeyCallback) *ssh.ClientConfig {
	return &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: callback,
		Timeout:         10 * time.Second,
	}
}

// SFTPRemote is a Remote backed by an sftp session.
type SFTPRemote struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

// MkdirAll creates dir and any missing parents.
func (r *SFTPRemote) MkdirAll(dir string) error { return r.sftp.MkdirAll(dir) }

// Create truncates or creates name for writing.
func (r *SFTPRemote) Create(name string) (io.WriteCloser, error) { return r.sftp.Create(name) }

// Rename moves oldname to newname, replacing newname where the server allows.
func (r *SFTPRemote) Rename(oldname, newname string) error {
	if err := r.sftp.PosixRename(oldname, newname); err != nil {
		return r.sftp.Rename(oldname, newname)
	}
	return nil
}

// RemoveAll deletes name and everything below it.
func (r *SFTPRemote) RemoveAll(name string) error { return r.sftp.RemoveAll(name) }

// Exists reports whether name exists on the remote.
func (r *SFTPRemote) Exists(name string) (bool, error) {
	_, err := r.sftp.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Close closes the sftp session and the ssh connection.
func (r *SFTPRemote) Close() error {
	_ = r.sftp.Close()
	return r.ssh.Close()
}

// ProbeHostKey connects just far enough to read the host key.
func ProbeHostKey(o Options) (ssh.PublicKey, error) {
	keyChan := make(chan ssh.PublicKey, 1)
	errProbed := errors.New("host key retrieved")

	config := &ssh.ClientConfig{
		User: "folio-probe",
		HostKeyCallback: func(_ string, _ net.Addr, key ssh.PublicKey) error {
			keyChan <- key
			return errProbed
		},
		Timeout: 5 * time.Second,
	}
	_, err := ssh.Dial("tcp", o.addr(), config)
	if err != nil && strings.Contains(err.Error(), errProbed.Error()) {
		return <-keyChan, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", o.Host, err)
	}
	return nil, errors.New("ssh handshake succeeded unexpectedly, could not retrieve key")
}

// TrustHost appends key for the target to the known_hosts file.
func TrustHost(o Options, key ssh.PublicKey) error {
	file, err := o.knownHostsFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	line := knownhosts.Line([]string{knownhosts.Normalize(o.addr())}, key)
	if _, err := fmt.Fprintln(f, line); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
