// Package build describes the bookmark binary: version stamps and where the
// project lives, as printed by `bookmark version`.
package build

// Info holds the version stamps cmd/bookmark sets from its ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/bookmark"
}
