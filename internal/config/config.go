package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ksyq12/stead/internal/logger"
)

// Default locations, rooted at the user's home directory.
const (
	defaultHomesteadDir = "Homestead"
	defaultSSLDir       = ".steadssl"
)

// Remote database defaults.
const (
	DefaultRemotePort   = 3306
	defaultRemoteSchema = "public"
)

// RemoteDatabase holds the connection settings for an optional remote
// database. It is only resolved when user, password, and host are all
// supplied.
type RemoteDatabase struct {
	User     string
	Password string
	Host     string
	Name     string
	Port     int
	Schema   string
}

// Project is the fully-resolved configuration for a setup run.
type Project struct {
	Name           string
	LocalDomain    string
	WorkDir        string
	HomesteadPath  string
	SSLPath        string
	DatabasePrefix string
	SecurityKey    string
	RemoteDatabase *RemoteDatabase
}

// Options carries the raw command-line values into Resolve. Empty
// strings mean "not supplied".
type Options struct {
	Project        string
	Domain         string
	HomesteadPath  string
	SSLPath        string
	DBPrefix       string
	SecurityKey    string
	RemoteUser     string
	RemotePassword string
	RemoteHost     string
	RemoteName     string
	RemotePort     int
	RemoteSchema   string
	WorkDir        string
}

// Resolve builds the Project configuration from options, the working
// directory, and the package manifest.
func Resolve(opts Options) (*Project, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}

	name := opts.Project
	if name == "" {
		name = resolveProjectName(workDir)
	}

	domain := opts.Domain
	if domain == "" {
		domain = name + ".local"
	}

	homesteadPath := opts.HomesteadPath
	sslPath := opts.SSLPath
	if homesteadPath == "" || sslPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		if homesteadPath == "" {
			homesteadPath = filepath.Join(home, defaultHomesteadDir)
		}
		if sslPath == "" {
			sslPath = filepath.Join(home, defaultSSLDir)
		}
	}

	project := &Project{
		Name:           name,
		LocalDomain:    domain,
		WorkDir:        workDir,
		HomesteadPath:  homesteadPath,
		SSLPath:        sslPath,
		DatabasePrefix: opts.DBPrefix,
		SecurityKey:    opts.SecurityKey,
		RemoteDatabase: resolveRemoteDatabase(opts, name),
	}

	logger.DebugFields("project config resolved", map[string]interface{}{
		"project": project.Name,
		"domain":  project.LocalDomain,
		"remote":  project.RemoteDatabase != nil,
	})

	return project, nil
}

// resolveRemoteDatabase is all-or-nothing on user, password, and host:
// if any of the three is missing the whole structure is absent, even
// when other remote options were supplied.
func resolveRemoteDatabase(opts Options, project string) *RemoteDatabase {
	if opts.RemoteUser == "" || opts.RemotePassword == "" || opts.RemoteHost == "" {
		return nil
	}

	remote := &RemoteDatabase{
		User:     opts.RemoteUser,
		Password: opts.RemotePassword,
		Host:     opts.RemoteHost,
		Name:     opts.RemoteName,
		Port:     opts.RemotePort,
		Schema:   opts.RemoteSchema,
	}
	if remote.Name == "" {
		remote.Name = project
	}
	if remote.Port == 0 {
		remote.Port = DefaultRemotePort
	}
	if remote.Schema == "" {
		remote.Schema = defaultRemoteSchema
	}
	return remote
}
