package filesys

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/egobogo/trelloboard/internal/config"
)

// FilesysConfigProvider is a concrete implementation of ConfigProvider that reads YAML config files.
// Nothing is read until LoadConfig is called.
type FilesysConfigProvider struct {
	fs afero.Fs
}

var _ config.ConfigProvider = (*FilesysConfigProvider)(nil)

// NewFilesysConfigProvider creates a new FilesysConfigProvider reading from fs.
func NewFilesysConfigProvider(fs afero.Fs) *FilesysConfigProvider {
	return &FilesysConfigProvider{fs: fs}
}

// LoadConfig reads and unmarshals the YAML configuration file into a Config struct.
func (f *FilesysConfigProvider) LoadConfig(path string) (*config.Config, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML config: %w", err)
	}
	return &cfg, nil
}
