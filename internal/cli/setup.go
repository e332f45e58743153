package cli

import (
	"fmt"

	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/input"
	"github.com/ksyq12/stead/internal/output"
	"github.com/spf13/cobra"
)

var (
	projectName   string
	securityKey   string
	domain        string
	homesteadPath string
	sslPath       string
	dbPrefix      string
	remoteUser    string
	remotePass    string
	remoteHost    string
	remoteName    string
	remotePort    int
	remoteSchema  string
	assumeYes     bool
	skipProvision bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Wire the current project into the Homestead box",
	Long: `Register the current project with the Homestead box and prepare its
local environment.

The project name comes from package.json (falling back to the directory
name); the local domain defaults to <project>.local.

Examples:
  stead setup
  stead setup --domain myapp.local --security-key abc123
  stead setup --remote-db-user admin --remote-db-password s3cret --remote-db-host db.example.com
  stead setup --skip-provision`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&projectName, "project", "", "Project name (default: package.json name or directory name)")
	setupCmd.Flags().StringVar(&securityKey, "security-key", "", "Security key to write into the env files")
	setupCmd.Flags().StringVar(&domain, "domain", "", "Local domain (default: <project>.local)")
	setupCmd.Flags().StringVar(&homesteadPath, "homestead-path", "", "Homestead directory (default: ~/Homestead)")
	setupCmd.Flags().StringVar(&sslPath, "ssl-path", "", "Host SSL directory shared with the box (default: ~/.steadssl)")
	setupCmd.Flags().StringVar(&dbPrefix, "db-prefix", "", "Database table prefix")
	setupCmd.Flags().StringVar(&remoteUser, "remote-db-user", "", "Remote database user")
	setupCmd.Flags().StringVar(&remotePass, "remote-db-password", "", "Remote database password")
	setupCmd.Flags().StringVar(&remoteHost, "remote-db-host", "", "Remote database host")
	setupCmd.Flags().StringVar(&remoteName, "remote-db-name", "", "Remote database name (default: project name)")
	setupCmd.Flags().IntVar(&remotePort, "remote-db-port", 0, "Remote database port (default: 3306)")
	setupCmd.Flags().StringVar(&remoteSchema, "remote-db-schema", "", "Remote database schema (default: public)")
	setupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	setupCmd.Flags().BoolVar(&skipProvision, "skip-provision", false, "Only perform the local file edits; skip vagrant and the cert import")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	project, err := config.Resolve(config.Options{
		Project:        projectName,
		Domain:         domain,
		HomesteadPath:  homesteadPath,
		SSLPath:        sslPath,
		DBPrefix:       dbPrefix,
		SecurityKey:    securityKey,
		RemoteUser:     remoteUser,
		RemotePassword: remotePass,
		RemoteHost:     remoteHost,
		RemoteName:     remoteName,
		RemotePort:     remotePort,
		RemoteSchema:   remoteSchema,
	})
	if err != nil {
		return err
	}

	if err := validateDomain(project.LocalDomain); err != nil {
		return err
	}

	if !assumeYes {
		output.Print("About to set up %s:", project.Name)
		output.Print("  domain:    %s", project.LocalDomain)
		output.Print("  homestead: %s", project.HomesteadPath)
		output.Print("This modifies Homestead.yaml and the hosts file. Continue? [y/N] ")
		if !input.Confirm(deps.Stdin) {
			output.Warn("Aborted")
			return nil
		}
	}

	runner, err := deps.NewRunner(project, deps.Executor)
	if err != nil {
		return err
	}
	runner.SetSkipProvision(skipProvision)

	if err := runner.Run(); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	return outputResult(
		CommandResult{
			Success: true,
			Project: project.Name,
			Domain:  project.LocalDomain,
		},
		"Project %s is ready at https://%s", project.Name, project.LocalDomain,
	)
}
