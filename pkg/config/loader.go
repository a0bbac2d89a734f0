package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"keptn/promotion-formatter/pkg/model"
)

const (
	appConfigDir      = "promotion-formatter"
	templatesFileName = "templates.yaml"
)

// ConfigurationError carries every validation error of the merged templates.
type ConfigurationError struct {
	Errors []string
}

func (e *ConfigurationError) Error() string {
	return "invalid line templates: " + strings.Join(e.Errors, ", ")
}

// DefaultTemplatesPath returns $XDG_CONFIG_HOME/promotion-formatter/templates.yaml,
// falling back to ~/.config when XDG_CONFIG_HOME is not set.
func DefaultTemplatesPath() string {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		home = filepath.Join(userHome, ".config")
	}
	return filepath.Join(home, appConfigDir, templatesFileName)
}

// LoadTemplates merges defaultPath and then every file in files, later files
// overriding earlier ones. A missing defaultPath is skipped, a missing entry of
// files is an error. The merged result must pass validation.
func LoadTemplates(defaultPath string, files ...string) (templates model.LineTemplates, err error) {
	if defaultPath != "" {
		if templates, err = readAndMergeFile(templates, defaultPath, true); err != nil {
			return templates, err
		}
	}
	for _, f := range files {
		if templates, err = readAndMergeFile(templates, f, false); err != nil {
			return templates, err
		}
	}
	if vs := NewValidator().Validate(templates); len(vs) > 0 {
		logger.WithField("func", "LoadTemplates").Errorf("validation of line templates failed: %s", strings.Join(vs, ","))
		return templates, &ConfigurationError{Errors: vs}
	}
	return templates, nil
}

func readAndMergeFile(target model.LineTemplates, path string, optional bool) (model.LineTemplates, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && optional {
		logger.WithField("func", "readAndMergeFile").Debugf("no template file at %s => ignoring", path)
		return target, nil
	}
	if err != nil {
		return target, fmt.Errorf("reading template file %s: %w", path, err)
	}
	var newTemplates model.LineTemplates
	if err := yaml.Unmarshal(data, &newTemplates); err != nil {
		return target, fmt.Errorf("parsing template file %s: %w", path, err)
	}
	logger.WithField("func", "readAndMergeFile").Infof("merged line templates from %s", path)
	return target.Merge(newTemplates), nil
}
