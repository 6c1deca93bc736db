package cmd

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport is the top-level structure serialized when --out is set. It
// captures the operation, when it ran, and the per-host outcomes in host
// list order.
type yamlReport struct {
	Name      string        `yaml:"name,omitempty"`
	Operation string        `yaml:"operation"`
	Command   string        `yaml:"command,omitempty"`
	Generated string        `yaml:"generated"`
	Hosts     []yamlHostRun `yaml:"hosts"`
}

// yamlHostRun records the outcome of a single fan-out unit: one command on
// one host, or one uploaded file.
type yamlHostRun struct {
	Host     string `yaml:"host"`
	File     string `yaml:"file,omitempty"`
	ExitCode int    `yaml:"exit_code"`
	Error    string `yaml:"error,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// newYAMLReport constructs a report seeded with fleet metadata and a
// generated timestamp.
func newYAMLReport(name, operation, command string) *yamlReport {
	return &yamlReport{
		Name:      name,
		Operation: operation,
		Command:   command,
		Generated: time.Now().Format(time.RFC3339),
	}
}

// addResults appends one entry per fan-out unit.
func (r *yamlReport) addResults(results []hostResult) {
	for _, res := range results {
		entry := yamlHostRun{
			Host:     res.host,
			File:     res.file,
			ExitCode: res.exitCode,
			Output:   string(res.output),
		}
		if res.err != nil {
			entry.Error = res.err.Error()
		}
		r.Hosts = append(r.Hosts, entry)
	}
}

// writeYAMLReport serializes the report to YAML with indentation and writes
// to the provided writer in a buffered manner for efficiency.
func writeYAMLReport(w io.Writer, r *yamlReport) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return err
	}
	_ = enc.Close()
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(buf.Bytes()); err != nil {
		return err
	}
	return bw.Flush()
}

// writeReportFile creates the report file (and any missing parent
// directories) and writes the serialized report into it.
func writeReportFile(path string, r *yamlReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return writeYAMLReport(f, r)
}
