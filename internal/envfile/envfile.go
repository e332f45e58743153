// Package envfile materializes environment files from their checked-in
// examples, substituting project-specific values for the placeholder
// tokens.
//
// Substitution is literal, not regex, and deliberately replaces only
// the first occurrence of each token: repeated tokens in an example
// file keep their later occurrences untouched.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ksyq12/stead/internal/config"
	"github.com/ksyq12/stead/internal/errors"
	"github.com/ksyq12/stead/internal/logger"
)

// Homestead's default in-box database credentials.
const (
	boxDBUser     = "homestead"
	boxDBPassword = "secret"
)

// Replacement is one literal search/replace pair.
type Replacement struct {
	Search  string
	Replace string
}

// Template pairs an example file with its live location.
type Template struct {
	Example string
	Target  string
}

// Templates returns the env files materialized for a project: the root
// .env and the web root's www/.env.
func Templates(project *config.Project) []Template {
	return []Template{
		{
			Example: filepath.Join(project.WorkDir, ".env.example"),
			Target:  filepath.Join(project.WorkDir, ".env"),
		},
		{
			Example: filepath.Join(project.WorkDir, "www", ".env.example"),
			Target:  filepath.Join(project.WorkDir, "www", ".env"),
		},
	}
}

// quoted builds the KEY="VALUE" replacement pair for an empty-valued
// placeholder line.
func quoted(key, value string) Replacement {
	return Replacement{
		Search:  fmt.Sprintf("%s=\"\"", key),
		Replace: fmt.Sprintf("%s=%q", key, value),
	}
}

// Replacements assembles the substitution pairs for a project. The
// database pairs always apply, using the merged box IP and Homestead's
// stock credentials; remote-database and prefix pairs apply only when
// those settings were resolved.
func Replacements(project *config.Project, boxIP string) []Replacement {
	var pairs []Replacement

	if project.SecurityKey != "" {
		pairs = append(pairs, quoted("SECURITY_KEY", project.SecurityKey))
	}

	pairs = append(pairs,
		quoted("DB_SERVER", boxIP),
		quoted("DB_USER", boxDBUser),
		quoted("DB_PASSWORD", boxDBPassword),
		quoted("DB_DATABASE", project.Name),
	)

	if remote := project.RemoteDatabase; remote != nil {
		pairs = append(pairs,
			quoted("REMOTE_DB_USER", remote.User),
			quoted("REMOTE_DB_PASSWORD", remote.Password),
			quoted("REMOTE_DB_HOST", remote.Host),
			quoted("REMOTE_DB_NAME", remote.Name),
			quoted("REMOTE_DB_PORT", strconv.Itoa(remote.Port)),
			quoted("REMOTE_DB_SCHEMA", remote.Schema),
		)
	}

	if project.DatabasePrefix != "" {
		pairs = append(pairs, quoted("DB_TABLE_PREFIX", project.DatabasePrefix))
	}

	return pairs
}

// Materialize copies the example file over the target and applies the
// replacement pairs to the result. A missing example or a write
// failure is returned to the caller, which reports it and moves on to
// the next template.
func Materialize(tmpl Template, replacements []Replacement) error {
	data, err := os.ReadFile(tmpl.Example)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTemplate,
			fmt.Sprintf("example file %s not readable", tmpl.Example), err)
	}

	content := string(data)
	for _, r := range replacements {
		content = strings.Replace(content, r.Search, r.Replace, 1)
	}

	if err := os.WriteFile(tmpl.Target, []byte(content), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeTemplate,
			fmt.Sprintf("failed to write %s", tmpl.Target), err)
	}

	logger.Debug("materialized %s from %s", tmpl.Target, tmpl.Example)
	return nil
}
