package cli

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/homestead"
	"github.com/ksyq12/stead/internal/output"
	"github.com/ksyq12/stead/internal/platform"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the machine and the Homestead setup.

Checks:
  - Vagrant installation
  - Homestead directory and Homestead.yaml
  - Project manifest (package.json)
  - Hosts file writability
  - Shared SSL directory

Examples:
  stead doctor
  stead doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Checks []CheckResult `json:"checks"`
}

var vagrantVersionPattern = regexp.MustCompile(`Vagrant (\d+\.\d+\.\d+)`)

func runDoctor(cmd *cobra.Command, args []string) error {
	project, err := config.Resolve(config.Options{
		Project:       projectName,
		HomesteadPath: homesteadPath,
		SSLPath:       sslPath,
	})
	if err != nil {
		return err
	}

	report := &DoctorReport{}
	report.Checks = append(report.Checks, checkVagrant())
	report.Checks = append(report.Checks, checkHomestead(project)...)
	report.Checks = append(report.Checks, checkManifest(project))
	report.Checks = append(report.Checks, checkHostsFile())
	report.Checks = append(report.Checks, checkSSLDir(project))

	if jsonOutput {
		return output.JSON(report)
	}

	for _, check := range report.Checks {
		displayCheck(check)
	}
	return nil
}

func checkVagrant() CheckResult {
	if _, err := deps.Executor.LookPath("vagrant"); err != nil {
		return CheckResult{Status: "error", Message: "Vagrant not installed"}
	}

	version := "unknown"
	if out, err := deps.Executor.Execute("vagrant", "--version"); err == nil {
		if matches := vagrantVersionPattern.FindStringSubmatch(string(out)); len(matches) >= 2 {
			version = matches[1]
		}
	}
	return CheckResult{Status: "success", Message: "Vagrant installed (" + version + ")"}
}

func checkHomestead(project *config.Project) []CheckResult {
	if _, err := os.Stat(project.HomesteadPath); err != nil {
		return []CheckResult{{Status: "error", Message: "Homestead directory not found at " + project.HomesteadPath}}
	}

	results := []CheckResult{{Status: "success", Message: "Homestead directory exists (" + project.HomesteadPath + ")"}}

	boxPath := homestead.Path(project.HomesteadPath)
	box, err := homestead.Load(boxPath)
	switch {
	case err != nil:
		results = append(results, CheckResult{Status: "error", Message: "Homestead.yaml not readable or malformed"})
	case box.IP == "":
		results = append(results, CheckResult{Status: "warning", Message: "Homestead.yaml has no ip set"})
	default:
		results = append(results, CheckResult{Status: "success", Message: "Homestead.yaml OK (box ip " + box.IP + ")"})
	}
	return results
}

func checkManifest(project *config.Project) CheckResult {
	manifestPath := filepath.Join(project.WorkDir, "package.json")
	if _, err := os.Stat(manifestPath); err != nil {
		return CheckResult{
			Status:  "warning",
			Message: "package.json not found; project name falls back to the directory name",
		}
	}
	return CheckResult{Status: "success", Message: "package.json found (project " + project.Name + ")"}
}

func checkHostsFile() CheckResult {
	path := platform.HostsPath()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsPermission(err) {
			return CheckResult{Status: "warning", Message: path + " not writable; setup will fall back to sudo"}
		}
		return CheckResult{Status: "error", Message: path + " not accessible"}
	}
	_ = f.Close()
	return CheckResult{Status: "success", Message: path + " writable"}
}

func checkSSLDir(project *config.Project) CheckResult {
	if _, err := os.Stat(project.SSLPath); err != nil {
		return CheckResult{
			Status:  "warning",
			Message: "SSL directory " + project.SSLPath + " does not exist yet; setup will create it",
		}
	}
	return CheckResult{Status: "success", Message: "SSL directory exists (" + project.SSLPath + ")"}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
