// Package config provides the configuration loader for gavel.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/gavel/internal/core/domain"
	"go.trai.ch/gavel/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "gavel.yaml"

const supportedVersion = "1"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{logger: logger}
}

// Load reads and validates the configuration at path. Relative repository
// paths are resolved against the directory of the configuration file.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(cfg.Grants) == 0 {
		l.logger.Warn("no grants configured, every publish will be denied")
	}
	return cfg, nil
}

// Load reads a configuration file from the given path and returns a domain.Config.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Gavelfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}

	return file.toDomain(filepath.Dir(path))
}

func (f *Gavelfile) toDomain(baseDir string) (*domain.Config, error) {
	if f.Version != supportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported version"), "version", f.Version)
	}

	level, err := parseLevel(f.LogLevel)
	if err != nil {
		return nil, err
	}

	if len(f.Repositories) == 0 {
		return nil, zerr.Wrap(domain.ErrInvalidConfig, "no repositories configured")
	}

	cfg := &domain.Config{
		LogLevel:     level,
		Repositories: make(map[string]domain.RepositoryConfig, len(f.Repositories)),
		Grants:       make([]domain.Grant, 0, len(f.Grants)),
	}

	for name, dto := range f.Repositories {
		switch dto.Backend {
		case domain.BackendFS, domain.BackendBolt:
		default:
			return nil, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown backend"), "backend", dto.Backend),
				"repository", name,
			)
		}
		if dto.Path == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "repository without path"), "repository", name)
		}

		path := dto.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		cfg.Repositories[name] = domain.RepositoryConfig{
			Name:    name,
			Backend: dto.Backend,
			Path:    filepath.Clean(path),
		}
	}

	for i, dto := range f.Grants {
		if dto.Identity == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "grant without identity"), "grant", i)
		}
		if len(dto.Paths) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "grant without paths"), "grant", i)
		}
		for _, repo := range dto.Repositories {
			if _, ok := cfg.Repositories[repo]; !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "grant names unknown repository"), "repository", repo)
			}
		}
		cfg.Grants = append(cfg.Grants, domain.Grant{
			Identity:     dto.Identity,
			Repositories: dto.Repositories,
			Paths:        dto.Paths,
		})
	}

	return cfg, nil
}

func parseLevel(raw string) (domain.LogLevel, error) {
	switch strings.ToLower(raw) {
	case "", "debug", "info", "warn", "warning", "error":
		return domain.ParseLogLevel(raw), nil
	default:
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown log level"), "log_level", raw)
	}
}
