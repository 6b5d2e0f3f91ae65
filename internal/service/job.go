package service

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Job describes one table-to-spreadsheet copy. Headers are the free-form
// bold text rows placed above the column headings, one row per string.
type Job struct {
	Table   string   `yaml:"table"`
	Output  string   `yaml:"output"`
	Sheet   string   `yaml:"sheet"`
	Headers []string `yaml:"headers"`
}

// LoadJobFile reads a copy job from a YAML file.
func LoadJobFile(path string) (Job, error) {
	var job Job
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("read job file: %w", err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("decode job file: %w", err)
	}
	if job.Table == "" {
		return job, fmt.Errorf("job file %s names no table", path)
	}
	return job, nil
}
