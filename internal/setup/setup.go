// Package setup runs the provisioning pipeline for a project: merge
// the box configuration, register the local domain, provision the
// virtual machine, trust its certificate, and materialize the env
// files.
//
// The pipeline is an explicit ordered list of steps. The driver stops
// at the first fatal failure and leaves the effects of completed steps
// in place; re-running the whole tool is the recovery path, and every
// step except the provisioning call is idempotent.
package setup

import (
	"fmt"

	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/envfile"
	"github.com/ksyq12/stead/internal/executor"
	"github.com/ksyq12/stead/internal/homestead"
	"github.com/ksyq12/stead/internal/hosts"
	"github.com/ksyq12/stead/internal/logger"
	"github.com/ksyq12/stead/internal/output"
	"github.com/ksyq12/stead/internal/platform"
	"github.com/ksyq12/stead/internal/ssl"
	"github.com/ksyq12/stead/internal/vagrant"
)

// Step is one stage of the pipeline.
type Step struct {
	Name string
	Run  func() error
}

// Runner executes the setup pipeline for one project.
type Runner struct {
	project       *config.Project
	exec          executor.CommandExecutor
	hostsFile     string
	keychain      string
	skipProvision bool

	// boxIP is captured by the merge step and consumed by the hosts
	// and env-file steps.
	boxIP string
}

// New creates a Runner against the system hosts file and the user's
// login keychain.
func New(project *config.Project, exec executor.CommandExecutor) (*Runner, error) {
	keychain, err := platform.LoginKeychain()
	if err != nil {
		return nil, err
	}
	return NewWithPaths(project, exec, platform.HostsPath(), keychain), nil
}

// NewWithPaths creates a Runner with explicit hosts-file and keychain
// locations (for testing).
func NewWithPaths(project *config.Project, exec executor.CommandExecutor, hostsFile, keychain string) *Runner {
	return &Runner{
		project:   project,
		exec:      exec,
		hostsFile: hostsFile,
		keychain:  keychain,
	}
}

// SetSkipProvision drops the provision and cert-import steps, leaving
// only the local file edits. Useful for re-running template
// materialization without a vagrant round-trip.
func (r *Runner) SetSkipProvision(skip bool) {
	r.skipProvision = skip
}

// Steps returns the pipeline in execution order.
func (r *Runner) Steps() []Step {
	steps := []Step{
		{Name: "merge-box", Run: r.mergeBox},
		{Name: "hosts", Run: r.registerHosts},
	}
	if !r.skipProvision {
		steps = append(steps,
			Step{Name: "provision", Run: r.provision},
			Step{Name: "cert-import", Run: r.importCert},
		)
	}
	steps = append(steps,
		Step{Name: "env-files", Run: r.materializeEnvFiles},
		Step{Name: "security-key", Run: r.bootstrapSecurityKey},
	)
	return steps
}

// Run executes the steps in order, stopping at the first fatal error.
func (r *Runner) Run() error {
	for _, step := range r.Steps() {
		logger.Debug("running step %s", step.Name)
		if err := step.Run(); err != nil {
			output.Error("step %s failed", step.Name)
			return err
		}
	}
	return nil
}

// mergeBox loads Homestead.yaml, appends the project's folder, site,
// and database entries, and rewrites the document.
func (r *Runner) mergeBox() error {
	path := homestead.Path(r.project.HomesteadPath)

	box, err := homestead.Load(path)
	if err != nil {
		return err
	}

	box.Merge(r.project)
	if err := box.Save(path); err != nil {
		return err
	}

	r.boxIP = box.IP
	output.Info("Updated %s", path)
	return nil
}

// registerHosts points the local domain at the box's address.
func (r *Runner) registerHosts() error {
	reg := hosts.NewRegistrarWithPath(r.hostsFile, r.exec)
	if err := reg.Register(r.boxIP, r.project.LocalDomain); err != nil {
		return err
	}
	output.Info("Registered %s in %s", r.project.LocalDomain, r.hostsFile)
	return nil
}

// provision reloads and re-provisions the box, then registers the
// domain inside the guest.
func (r *Runner) provision() error {
	box := vagrant.New(r.project.HomesteadPath, r.exec)

	output.Info("Provisioning the box (this can take a while)...")
	if err := box.ReloadProvision(); err != nil {
		return err
	}
	if err := box.AliasDomain(r.project.LocalDomain); err != nil {
		return err
	}

	output.Info("Box provisioned")
	return nil
}

// importCert stages the generated certificate out of the guest and
// trusts it on the host.
func (r *Runner) importCert() error {
	box := vagrant.New(r.project.HomesteadPath, r.exec)
	importer := ssl.NewImporter(r.project.SSLPath, r.keychain, box, r.exec)

	if err := importer.Import(r.project.LocalDomain); err != nil {
		return err
	}

	output.Info("Trusted certificate for %s", r.project.LocalDomain)
	return nil
}

// materializeEnvFiles copies the example env files and substitutes the
// resolved values. A failing template is reported and does not abort
// the other template or the run.
func (r *Runner) materializeEnvFiles() error {
	replacements := envfile.Replacements(r.project, r.boxIP)

	for _, tmpl := range envfile.Templates(r.project) {
		if err := envfile.Materialize(tmpl, replacements); err != nil {
			output.Warn("Skipping %s: %v", tmpl.Target, err)
			continue
		}
		output.Info("Wrote %s", tmpl.Target)
	}
	return nil
}

// bootstrapSecurityKey asks the project to generate its own security
// key when none was supplied.
func (r *Runner) bootstrapSecurityKey() error {
	if r.project.SecurityKey != "" {
		return nil
	}

	output.Info("Generating a security key...")
	out, err := r.exec.ExecuteIn(r.project.WorkDir, "./craft", "setup/security-key")
	if err != nil {
		return fmt.Errorf("security key generation failed: %s: %w", string(out), err)
	}
	return nil
}
