// Package hosts registers local domains in the system hosts file.
package hosts

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"

	"github.com/ksyq12/stead/internal/errors"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/logger"
	"github.com/ksyq12/stead/internal/platform"
)

// Registrar appends host-name-to-IP mappings to the hosts file.
type Registrar struct {
	path string
	exec executor.CommandExecutor
}

// NewRegistrar creates a Registrar for the system hosts file.
func NewRegistrar(exec executor.CommandExecutor) *Registrar {
	return &Registrar{
		path: platform.HostsPath(),
		exec: exec,
	}
}

// NewRegistrarWithPath creates a Registrar for a specific hosts file
// (for testing).
func NewRegistrarWithPath(path string, exec executor.CommandExecutor) *Registrar {
	return &Registrar{
		path: path,
		exec: exec,
	}
}

// Register appends "<ip> <domain>" to the hosts file. A direct append
// is tried first; if that is denied, the same append runs through an
// elevated shell. Any other failure is fatal.
func (r *Registrar) Register(ip, domain string) error {
	line := fmt.Sprintf("%s %s\n", ip, domain)

	if err := r.appendDirect(line); err != nil {
		if !os.IsPermission(err) {
			return errors.Wrap(errors.ErrCodeHosts, fmt.Sprintf("failed to update %s", r.path), err)
		}
		logger.Info("direct hosts append denied, retrying with sudo")
		return r.appendElevated(line)
	}

	logger.Debug("registered %s %s in %s", ip, domain, r.path)
	return nil
}

func (r *Registrar) appendDirect(line string) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteString(line)
	return err
}

func (r *Registrar) appendElevated(line string) error {
	shellLine := fmt.Sprintf("echo %s >> %s", shellquote.Join(line[:len(line)-1]), shellquote.Join(r.path))
	output, err := r.exec.Execute("sudo", "sh", "-c", shellLine)
	if err != nil {
		return errors.Wrap(errors.ErrCodeHosts,
			fmt.Sprintf("elevated hosts append failed: %s", string(output)), err)
	}
	return nil
}
