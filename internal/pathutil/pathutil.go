// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envTempo = "TEMPO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dataDir        string
}

// New computes the default locations of the config file and data directory.
func New() (*Paths, error) {
	p := &Paths{
		configDir:      "tempo",
		configFileName: "config.yml",
		dbFileName:     "tempo.db",
		logFileName:    "tempo.log",
	}

	p.applyEnvironmentOverrides()

	err := p.computePaths()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// WithDataDir returns a copy of p that keeps its data in dir.
func (p *Paths) WithDataDir(dir string) *Paths {
	cp := *p

	if dir != "" {
		cp.dataDir = dir
	}

	return &cp
}

func (p *Paths) Dir() string {
	return p.configDir
}

func (p *Paths) DataDir() string {
	return p.dataDir
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DBFilePath() string {
	return filepath.Join(p.dataDir, p.dbFileName)
}

func (p *Paths) LogFilePath() string {
	return filepath.Join(p.dataDir, "log", p.logFileName)
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envTempo))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("tempo_%s.db", env)
		p.logFileName = fmt.Sprintf("tempo_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("locating config file: %w", err)
	}

	p.dataDir, err = xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("locating data directory: %w", err)
	}

	return nil
}
