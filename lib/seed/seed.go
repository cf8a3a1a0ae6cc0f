// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package seed loads the initial task collection from a file.
//
// Seed files are authored as JSONC (JSON with // and /* */ comments and
// trailing commas) or YAML, chosen by file extension. Both hold a
// single "tasks" list:
//
//	tasks:
//	  - title: Buy groceries
//	    description: Milk, bread, eggs
//	    status: completed
//	    priority: medium
//	    deadline: 2024-12-09
//
// Status defaults to active and priority to medium when omitted. Every
// entry goes through the store's normal creation path, so seeded tasks
// get fresh IDs and creation times and obey the same validation as
// tasks typed into the form.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tasklist/lib/task"
)

//go:embed default.jsonc
var defaultSeed []byte

// Entry is one task in a seed file. Values use the canonical text of
// each field.
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty"`
	Deadline    string `json:"deadline,omitempty" yaml:"deadline,omitempty"`
}

// File is the top-level structure of a seed file.
type File struct {
	Tasks []Entry `json:"tasks" yaml:"tasks"`
}

// Creator is the subset of the task store Apply needs.
type Creator interface {
	Create(fields task.Fields) (task.Task, error)
}

// Default returns the built-in sample tasks.
func Default() []Entry {
	file, err := ParseJSONC(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("seed: embedded default seed is invalid: %v", err))
	}
	return file.Tasks
}

// ParseJSONC strips comments and trailing commas from data and decodes
// the result.
func ParseJSONC(data []byte) (*File, error) {
	var file File
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &file, nil
}

// ParseYAML decodes a YAML seed document.
func ParseYAML(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &file, nil
}

// ReadFile reads a seed file, choosing the parser by extension: .yaml
// and .yml are YAML, .json and .jsonc are JSONC.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file *File
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		file, err = ParseYAML(data)
	case ".json", ".jsonc":
		file, err = ParseJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported seed format %q (expected .json, .jsonc, .yaml, or .yml)", path, extension)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Fields converts the entry into creation fields.
func (entry Entry) Fields() (task.Fields, error) {
	fields := task.Fields{
		Title:       entry.Title,
		Description: entry.Description,
		Status:      task.StatusActive,
		Priority:    task.PriorityMedium,
	}

	if entry.Status != "" {
		status, err := task.ParseStatus(entry.Status)
		if err != nil {
			return task.Fields{}, err
		}
		fields.Status = status
	}
	if entry.Priority != "" {
		priority, err := task.ParsePriority(entry.Priority)
		if err != nil {
			return task.Fields{}, err
		}
		fields.Priority = priority
	}
	if strings.TrimSpace(entry.Deadline) != "" {
		deadline, err := task.ParseDate(entry.Deadline)
		if err != nil {
			return task.Fields{}, err
		}
		fields.Deadline = &deadline
	}
	return fields, nil
}

// Apply creates every entry in order. All entries are checked before
// any is created, so an invalid entry leaves the store untouched. The
// error names the offending entry by index and title.
func Apply(store Creator, entries []Entry) ([]task.Task, error) {
	prepared := make([]task.Fields, len(entries))
	for index, entry := range entries {
		fields, err := entry.Fields()
		if err == nil {
			err = fields.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("seed entry %d (%q): %w", index, entry.Title, err)
		}
		prepared[index] = fields
	}

	created := make([]task.Task, 0, len(prepared))
	for index, fields := range prepared {
		item, err := store.Create(fields)
		if err != nil {
			return created, fmt.Errorf("seed entry %d (%q): %w", index, entries[index].Title, err)
		}
		created = append(created, item)
	}
	return created, nil
}
