// Package vagrant drives the Homestead virtual machine through the
// vagrant CLI: reload/provision of the box and shell commands inside
// the guest.
package vagrant

import (
	"fmt"

	"github.com/kballard/go-shellquote"

	"github.com/ksyq12/stead/internal/errors"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/logger"
)

// Box runs vagrant commands against one Homestead directory.
type Box struct {
	dir  string
	exec executor.CommandExecutor
}

// New creates a Box for the Homestead directory at dir.
func New(dir string, exec executor.CommandExecutor) *Box {
	return &Box{dir: dir, exec: exec}
}

// IsInstalled checks if the vagrant binary is on PATH.
func (b *Box) IsInstalled() bool {
	_, err := b.exec.LookPath("vagrant")
	return err == nil
}

// ReloadProvision reloads the box and re-runs its provisioners. Blocks
// until vagrant exits; a non-zero exit is fatal for the run.
func (b *Box) ReloadProvision() error {
	if !b.IsInstalled() {
		return errors.ErrVagrantNotFound
	}

	logger.Info("running vagrant reload --provision in %s", b.dir)
	output, err := b.exec.ExecuteIn(b.dir, "vagrant", "reload", "--provision")
	if err != nil {
		return errors.Wrap(errors.ErrCodeProvision,
			fmt.Sprintf("vagrant reload failed: %s", string(output)), err)
	}
	return nil
}

// GuestShell runs a shell command inside the guest via vagrant ssh.
func (b *Box) GuestShell(command string) ([]byte, error) {
	output, err := b.exec.ExecuteIn(b.dir, "vagrant", "ssh", "-c", command)
	if err != nil {
		return output, errors.Wrap(errors.ErrCodeProvision,
			fmt.Sprintf("guest command failed: %s", string(output)), err)
	}
	return output, nil
}

// AliasDomain appends a loopback alias for domain to the guest's own
// hosts file, so the box resolves the site locally.
func (b *Box) AliasDomain(domain string) error {
	line := fmt.Sprintf("127.0.0.1 %s", domain)
	command := fmt.Sprintf("echo %s | sudo tee -a /etc/hosts", shellquote.Join(line))

	if _, err := b.GuestShell(command); err != nil {
		return err
	}
	logger.Debug("aliased %s inside the guest", domain)
	return nil
}
