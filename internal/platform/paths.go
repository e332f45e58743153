// Package platform provides platform-specific system paths used by the
// setup pipeline: the hosts file and the user keychain the trusted
// certificate is imported into.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// windowsHostsFile is relative to the SystemRoot directory.
const windowsHostsFile = `System32\drivers\etc\hosts`

// HostsPath returns the location of the system hosts file.
func HostsPath() string {
	if runtime.GOOS == "windows" {
		systemRoot := os.Getenv("SystemRoot")
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		return filepath.Join(systemRoot, windowsHostsFile)
	}
	return "/etc/hosts"
}

// LoginKeychain returns the path of the user's login keychain, the
// target of the certificate trust import.
func LoginKeychain() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "Library", "Keychains", "login.keychain"), nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
