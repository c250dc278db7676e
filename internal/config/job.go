package config

import (
	"errors"
	"fmt"

	"github.com/Maxime2/interpolation"
	"gopkg.in/gcfg.v1"
)

// JobConfig describes one batch run. Job files are INI style:
//
//	[job]
//	points = data.txt
//	method = lagrange
//	method = newton-divided
//	x = 1.5
//	x = 2.5
//	output = chart.png
//	resolution = 150
//
// Relative points and output paths are taken from the job file's directory.
type JobConfig struct {
	Points     string
	Method     []string
	X          []float64
	Output     string
	Resolution int
}

type jobWrapper struct {
	Job JobConfig
}

var ErrNoPoints = errors.New("job: points file is required")

// LoadJob reads and validates a job file.
func LoadJob(fname string) (*JobConfig, error) {
	wrap := jobWrapper{}
	if err := gcfg.ReadFileInto(&wrap, fname); err != nil {
		return nil, fmt.Errorf("read job %s: %w", fname, err)
	}
	if err := wrap.Job.Validate(); err != nil {
		return nil, fmt.Errorf("job %s: %w", fname, err)
	}
	return &wrap.Job, nil
}

// ParseJob is LoadJob for an in-memory job description.
func ParseJob(text string) (*JobConfig, error) {
	wrap := jobWrapper{}
	if err := gcfg.ReadStringInto(&wrap, text); err != nil {
		return nil, fmt.Errorf("read job: %w", err)
	}
	if err := wrap.Job.Validate(); err != nil {
		return nil, err
	}
	return &wrap.Job, nil
}

func (j *JobConfig) Validate() error {
	if j.Points == "" {
		return ErrNoPoints
	}
	if j.Resolution < 0 {
		return fmt.Errorf("resolution must not be negative, got %d", j.Resolution)
	}
	_, err := interpolation.ParseMethods(j.Method)
	return err
}

// Methods returns the job's methods, all of them when none are listed.
func (j *JobConfig) Methods() []interpolation.Method {
	ms, err := interpolation.ParseMethods(j.Method)
	if err != nil {
		return interpolation.Methods()
	}
	return ms
}
