package config

// Gavelfile represents the structure of the gavel.yaml configuration file.
type Gavelfile struct {
	Version      string                   `yaml:"version"`
	LogLevel     string                   `yaml:"log_level"`
	Repositories map[string]RepositoryDTO `yaml:"repositories"`
	Grants       []GrantDTO               `yaml:"grants"`
}

// RepositoryDTO represents a repository definition in the configuration.
type RepositoryDTO struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// GrantDTO represents a write grant in the configuration.
type GrantDTO struct {
	Identity     string   `yaml:"identity"`
	Repositories []string `yaml:"repositories"`
	Paths        []string `yaml:"paths"`
}
