// Package loader reads process sets and Banker's inputs from CSV, YAML and
// JSON files.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMalformedInput    = errors.New("malformed input")
)

// Format is an input encoding, chosen from the file extension.
type Format string

const (
	CSV  Format = "csv"
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadScheduleFile opens path and decodes it according to its extension.
func LoadScheduleFile(path string) (requests.ScheduleRequests, error) {
	format, err := FormatOf(path)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return requests.ScheduleRequests{}, fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer closeFile(f)

	req, err := LoadSchedule(f, format)
	if err != nil {
		return requests.ScheduleRequests{}, err
	}
	logrus.Debugf("loaded %d processes from %s", len(req.Processes), path)
	return req, nil
}

// LoadSchedule decodes a process set. CSV rows are id,burst,arrival[,priority]
// and carry no quantum; YAML and JSON may set time quanta too.
func LoadSchedule(r io.Reader, format Format) (requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	switch format {
	case CSV:
		processes, err := LoadProcessesCSV(r)
		if err != nil {
			return req, err
		}
		req.Processes = processes
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return req, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	default:
		return req, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return req, nil
}

// LoadProcessesCSV reads id,burst,arrival[,priority] rows. A first row whose
// id column is not a number is taken as a header and skipped.
func LoadProcessesCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrMalformedInput, err)
	}
	if len(rows) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			rows = rows[1:]
		}
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3 or 4", ErrMalformedInput, i+1, len(row))
		}
		values := make([]int, len(row))
		for j := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, i+1, err)
			}
			values[j] = v
		}
		p := core.Process{ID: values[0], BurstTime: values[1], ArrivalTime: values[2]}
		if len(values) == 4 {
			p.Priority = core.IntPtr(values[3])
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// WriteProcessesCSV writes processes in the layout LoadProcessesCSV reads.
func WriteProcessesCSV(w io.Writer, processes []core.Process) error {
	writer := csv.NewWriter(w)
	for _, p := range processes {
		row := []string{strconv.Itoa(p.ID), strconv.Itoa(p.BurstTime), strconv.Itoa(p.ArrivalTime)}
		if p.Priority != nil {
			row = append(row, strconv.Itoa(*p.Priority))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadBankersFile reads a Banker's input from a YAML or JSON file.
func LoadBankersFile(path string) (requests.BankersRequest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return requests.BankersRequest{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return requests.BankersRequest{}, fmt.Errorf("%v: error opening banker's file", err)
	}
	defer closeFile(f)
	return LoadBankers(f, format)
}

func LoadBankers(r io.Reader, format Format) (requests.BankersRequest, error) {
	var req requests.BankersRequest
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&req); err != nil {
			return req, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return req, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	default:
		return req, fmt.Errorf("%w: %q for banker's input", ErrUnsupportedFormat, format)
	}
	return req, nil
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		logrus.Warnf("%v: error closing %s", err, f.Name())
	}
}
