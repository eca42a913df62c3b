package instance

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/nisu0001/bea-apa3.0/internal/constants"
	"github.com/nisu0001/bea-apa3.0/internal/logger"
)

// ErrAlreadyRunning reports that another daemon owns the instance socket.
// The caller has already asked it to raise itself.
var ErrAlreadyRunning = errors.New("another instance is already running")

// Server owns the single-instance socket. A second launch connects, sends
// the raise message and exits; the first launch keeps the listener for its
// lifetime.
type Server struct {
	listener net.Listener
	socket   string
	lockfile string
	secret   string
	onRaise  func()
	done     chan struct{}
}

// Acquire enforces single-instance startup. If a live instance answers on
// the socket, the raise message is sent fire-and-forget and
// ErrAlreadyRunning is returned. Otherwise any stale socket is removed, the
// listener is bound, and a lockfile (pid|secret) is written for external
// collaborators.
func Acquire(configDir string, onRaise func()) (*Server, error) {
	socket := filepath.Join(configDir, constants.InstanceSocketName)
	lockfile := filepath.Join(configDir, constants.InstanceLockName)

	if raiseExisting(socket) {
		return nil, ErrAlreadyRunning
	}

	// Connect failed: any leftover socket file is stale. A lockfile whose
	// recorded pid is dead was left by a crashed instance and goes with it.
	if err := os.Remove(socket); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale socket: %w", err)
	}
	if _, err := os.Stat(lockfile); err == nil && !HolderAlive(configDir) {
		logger.Warn("Removing lockfile left by a crashed instance", "path", lockfile)
		os.Remove(lockfile)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("failed to bind instance socket: %w", err)
	}

	s := &Server{
		listener: listener,
		socket:   socket,
		lockfile: lockfile,
		secret:   uuid.NewString(),
		onRaise:  onRaise,
		done:     make(chan struct{}),
	}

	if err := s.writeLockfile(); err != nil {
		listener.Close()
		os.Remove(socket)
		return nil, err
	}

	go s.serve()
	return s, nil
}

// raiseExisting attempts the client half of the handshake: connect with a
// short timeout and send the raise payload. No reply is expected and there
// is no retry.
func raiseExisting(socket string) bool {
	conn, err := net.DialTimeout("unix", socket, constants.InstanceDialTimeout)
	if err != nil {
		return false
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(constants.InstanceDialTimeout))
	if _, err := conn.Write([]byte(constants.RaiseMessage)); err != nil {
		logger.Warn("Failed to send raise message", "error", err)
	}
	return true
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				logger.Warn("Instance socket accept failed", "error", err)
				return
			}
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(constants.InstanceDialTimeout))
	buf := make([]byte, 64)
	n, err := conn.Read(buf)
	if err != nil && n == 0 {
		return
	}

	if strings.TrimSpace(string(buf[:n])) == constants.RaiseMessage {
		logger.Info("Raise requested by another launch")
		if s.onRaise != nil {
			s.onRaise()
		}
	}
}

func (s *Server) writeLockfile() error {
	content := fmt.Sprintf("%d|%s", os.Getpid(), s.secret)
	if err := os.WriteFile(s.lockfile, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	return nil
}

// Close releases the socket and lockfile.
func (s *Server) Close() error {
	close(s.done)
	err := s.listener.Close()
	os.Remove(s.socket)
	os.Remove(s.lockfile)
	return err
}

// HolderAlive reports whether the pid recorded in an instance lockfile
// belongs to a live process. Used to detect crashed instances that left
// files behind.
func HolderAlive(configDir string) bool {
	content, err := os.ReadFile(filepath.Join(configDir, constants.InstanceLockName))
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 2 {
		return false
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	process, err := ps.FindProcess(pid)
	return err == nil && process != nil
}
