package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sigcmp/internal/align"
)

// Scenario defines one comparison run and its expected outcome.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Policy selects how records are compared.
	Policy PolicySpec `yaml:"policy,omitempty"`

	// Left and Right are the two logs, in comparison order.
	Left  LogSpec `yaml:"left"`
	Right LogSpec `yaml:"right"`

	// Expect is what the run must produce.
	Expect Expectation `yaml:"expect"`
}

// PolicySpec mirrors the --ignore-time and --time-deviation flags.
type PolicySpec struct {
	IgnoreTime    bool     `yaml:"ignore_time,omitempty"`
	TimeDeviation *float64 `yaml:"time_deviation,omitempty"`
}

// Policy converts p to an aligner policy.
func (p PolicySpec) Policy() align.Policy {
	switch {
	case p.IgnoreTime:
		return align.IgnoreTimePolicy()
	case p.TimeDeviation != nil:
		return align.DeviationPolicy(*p.TimeDeviation)
	default:
		return align.ExactPolicy()
	}
}

// LogSpec is one input log, given inline or as a file.
type LogSpec struct {
	// Name labels output lines, like a file name on the command line.
	Name string `yaml:"name"`

	// Lines is the inline log content. An empty list is an empty log.
	Lines []string `yaml:"lines,omitempty"`

	// File is a path to the log. Relative paths are resolved against the
	// base path given to LoadScenarioWithBasePath.
	File string `yaml:"file,omitempty"`
}

// Expectation lists the checks applied to a run. Nil fields are not checked.
type Expectation struct {
	Reports *int          `yaml:"reports,omitempty"`
	Matched *int          `yaml:"matched,omitempty"`
	Signals *int          `yaml:"signals,omitempty"`
	Blocks  []ExpectBlock `yaml:"blocks,omitempty"`
	Output  *string       `yaml:"output,omitempty"`
}

// empty reports whether no check is configured.
func (e Expectation) empty() bool {
	return e.Reports == nil && e.Matched == nil && e.Signals == nil && e.Blocks == nil && e.Output == nil
}

// ExpectBlock is one expected report, in output notation.
type ExpectBlock struct {
	Signal int      `yaml:"signal"`
	Lines  []string `yaml:"lines"`
}

// LoadScenario reads and parses a scenario YAML file.
// Relative log file paths are resolved against the scenario's directory.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving log file paths relative to basePath.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	for _, l := range []*LogSpec{&scenario.Left, &scenario.Right} {
		if l.File != "" && !filepath.IsAbs(l.File) && basePath != "" {
			l.File = filepath.Join(basePath, l.File)
		}
	}

	if err := validateLogFiles(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario, nil
}

// ParseScenario decodes scenario YAML without touching the filesystem.
// Log file references are not checked.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateFields(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateFields checks required fields and their shape.
func validateFields(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if err := validateLog("left", s.Left); err != nil {
		return err
	}
	if err := validateLog("right", s.Right); err != nil {
		return err
	}

	if err := s.Policy.Policy().Validate(); err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	if s.Expect.empty() {
		return fmt.Errorf("expect must set at least one of reports, matched, signals, blocks, output")
	}

	for i, b := range s.Expect.Blocks {
		if b.Signal <= 0 {
			return fmt.Errorf("expect.blocks[%d]: signal must be positive", i)
		}
		if len(b.Lines) == 0 || len(b.Lines) > 2 {
			return fmt.Errorf("expect.blocks[%d]: lines must hold one or two entries", i)
		}
	}

	return nil
}

func validateLog(side string, l LogSpec) error {
	if l.Name == "" {
		return fmt.Errorf("%s.name is required", side)
	}
	if l.File != "" && len(l.Lines) > 0 {
		return fmt.Errorf("%s: lines and file are mutually exclusive", side)
	}
	return nil
}

// validateLogFiles verifies referenced log files exist.
func validateLogFiles(s *Scenario) error {
	if err := checkLogFile("left", s.Left); err != nil {
		return err
	}
	return checkLogFile("right", s.Right)
}

func checkLogFile(side string, l LogSpec) error {
	if l.File == "" {
		return nil
	}
	if _, err := os.Stat(l.File); os.IsNotExist(err) {
		return fmt.Errorf("%s: log file not found: %s", side, l.File)
	}
	return nil
}
