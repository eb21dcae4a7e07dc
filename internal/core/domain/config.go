package domain

// Storage backends understood by the storage opener.
const (
	BackendFS   = "fs"
	BackendBolt = "bolt"
)

// Config is the validated application configuration.
type Config struct {
	LogLevel     LogLevel
	Repositories map[string]RepositoryConfig
	Grants       []Grant
}

// RepositoryConfig describes where one repository keeps its files.
type RepositoryConfig struct {
	Name    string
	Backend string
	Path    string
}

// Grant allows Identity to modify directories matching Paths in Repositories.
// An empty Repositories list applies the grant to every repository.
type Grant struct {
	Identity     string
	Repositories []string
	Paths        []string
}

// Repository looks up a repository by name.
func (c *Config) Repository(name string) (RepositoryConfig, bool) {
	repo, ok := c.Repositories[name]
	return repo, ok
}
