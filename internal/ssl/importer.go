package ssl

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/ksyq12/stead/internal/errors"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/homestead"
	"github.com/ksyq12/stead/internal/logger"
	"github.com/ksyq12/stead/internal/vagrant"
)

// guestCertDir is where Homestead's provisioner writes the generated
// site certificates inside the guest.
const guestCertDir = "/etc/nginx/ssl"

// Importer copies a generated certificate out of the guest and imports
// it into the host trust store.
type Importer struct {
	sslPath  string
	keychain string
	box      *vagrant.Box
	exec     executor.CommandExecutor
}

// NewImporter creates an Importer. sslPath is the host-side directory
// shared with the guest, keychain the trust store the certificate is
// imported into.
func NewImporter(sslPath, keychain string, box *vagrant.Box, exec executor.CommandExecutor) *Importer {
	return &Importer{
		sslPath:  sslPath,
		keychain: keychain,
		box:      box,
		exec:     exec,
	}
}

// CertPath returns the host-side path of the staged certificate.
func (i *Importer) CertPath(domain string) string {
	return filepath.Join(i.sslPath, domain+".crt")
}

// Import stages the certificate for domain out of the guest into the
// shared SSL directory and imports it into the trust store. Every
// failure is fatal for the run.
func (i *Importer) Import(domain string) error {
	if err := os.MkdirAll(i.sslPath, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeSSL,
			fmt.Sprintf("failed to create ssl directory %s", i.sslPath), err)
	}

	if err := i.stage(domain); err != nil {
		return err
	}
	return i.trust(domain)
}

// stage copies the generated certificate into the shared SSL folder
// via a guest shell command.
func (i *Importer) stage(domain string) error {
	src := path.Join(guestCertDir, domain+".crt")
	command := fmt.Sprintf("sudo cp %s", shellquote.Join(src, homestead.GuestSSLDir+"/"))

	logger.Info("staging certificate for %s out of the guest", domain)
	if _, err := i.box.GuestShell(command); err != nil {
		return errors.Wrap(errors.ErrCodeSSL,
			fmt.Sprintf("failed to stage certificate for %s", domain), err)
	}
	return nil
}

// trust imports the staged certificate into the host trust store.
func (i *Importer) trust(domain string) error {
	cert := i.CertPath(domain)

	logger.Info("importing %s into the trust store", cert)
	output, err := i.exec.Execute("security", "add-trusted-cert",
		"-d", "-r", "trustRoot", "-k", i.keychain, cert)
	if err != nil {
		return errors.Wrap(errors.ErrCodeSSL,
			fmt.Sprintf("certificate import failed: %s", string(output)), err)
	}
	return nil
}
