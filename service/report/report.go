// Package report renders allocation runs for display and writes them to any
// afs supported destination.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/guitarfest/model"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Unmatched marks a person without an item in text output.
const Unmatched = "-"

// Render renders run in the supplied format.
func Render(run *model.Run, format string) ([]byte, error) {
	if run == nil {
		return nil, fmt.Errorf("run was nil")
	}
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		return json.MarshalIndent(run, "", "  ")
	case FormatYAML:
		return yaml.Marshal(run)
	}
	return renderText(run), nil
}

// ParseFormat returns the canonical name of a supported format, text when
// empty.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported report format: %q", format)
}

// renderText lists every round with one line per person, in priority order.
func renderText(run *model.Run) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "run: %s\n", run.ID)
	if run.Seed != 0 {
		fmt.Fprintf(buf, "seed: %d\n", run.Seed)
	}
	persons := persons(run)
	for i, allocation := range run.Rounds() {
		fmt.Fprintf(buf, "\nround %d\n", i+1)
		for _, person := range persons {
			item, ok := allocation[person]
			if !ok {
				fmt.Fprintf(buf, "%s: %s\n", person, Unmatched)
				continue
			}
			fmt.Fprintf(buf, "%s: %s\n", person, item)
		}
	}
	return buf.Bytes()
}

// persons returns the priority order followed by any allocated person
// missing from it, sorted.
func persons(run *model.Run) []model.Person {
	ret := append([]model.Person{}, run.Order...)
	listed := make(map[model.Person]bool, len(ret))
	for _, person := range ret {
		listed[person] = true
	}
	var extra []model.Person
	for _, allocation := range run.Rounds() {
		for person := range allocation {
			if !listed[person] {
				listed[person] = true
				extra = append(extra, person)
			}
		}
	}
	slices.Sort(extra)
	return append(ret, extra...)
}

// Write uploads data to URL.
func Write(ctx context.Context, fs afs.Service, URL string, data []byte) error {
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", URL, err)
	}
	return nil
}
