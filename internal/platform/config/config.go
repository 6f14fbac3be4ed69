package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "nshub/internal/platform/errors"
)

// DefaultBaseURL is the regional portal instance the client talks to unless
// the saved configuration overrides it.
const DefaultBaseURL = "https://sgo.rso23.ru"

// Credentials is everything needed to open a portal session. School may be
// a numeric ID or a school name; the school module resolves names.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	School   string `yaml:"school"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Username) == "" || strings.TrimSpace(c.Password) == "" || strings.TrimSpace(c.School) == "" {
		return fmt.Errorf("%w: username, password and school are required", apperrors.ErrInvalidInput)
	}
	return nil
}

// Provider is the injected configuration source. The pipeline never touches
// config files directly; it receives already-resolved credentials.
type Provider interface {
	Load() (Credentials, error)
	Save(Credentials) error
	// Invalidate removes stored credentials, typically after the portal
	// rejected them.
	Invalidate() error
}

type FileProvider struct {
	path string
}

// NewFileProvider stores credentials under the user config directory
// (~/.config/nshub/config.yaml on Linux, the platform equivalent elsewhere).
func NewFileProvider() (*FileProvider, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	return &FileProvider{path: filepath.Join(dir, "nshub", "config.yaml")}, nil
}

// NewFileProviderAt uses an explicit config file path.
func NewFileProviderAt(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Path() string { return p.path }

func (p *FileProvider) Load() (Credentials, error) {
	b, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, apperrors.ErrNoConfig
		}
		return Credentials{}, fmt.Errorf("read config: %w", err)
	}
	var creds Credentials
	if err := yaml.Unmarshal(b, &creds); err != nil {
		return Credentials{}, fmt.Errorf("decode config: %w", err)
	}
	if creds.BaseURL == "" {
		creds.BaseURL = DefaultBaseURL
	}
	return creds, nil
}

func (p *FileProvider) Save(creds Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	// The file holds a password; keep it readable by the owner only.
	if err := os.WriteFile(p.path, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (p *FileProvider) Invalidate() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config: %w", err)
	}
	return nil
}
