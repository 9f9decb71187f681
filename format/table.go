// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/fatih/structs"
)

// TableOpts are options used when rendering a table
type TableOpts struct {
	Rows       []interface{}
	Colors     []*color.Color
	Columns    []string
	Separator  string
	ShowHeader bool
}

// Table builds a text table from the given struct rows and chosen columns.
// It returns a list of lines that can be printed.
func Table(opts TableOpts) ([]string, error) {

	if len(opts.Rows) == 0 {
		return nil, errors.New("No rows to display")
	}
	if len(opts.Columns) == 0 {
		return nil, errors.New("No columns to display")
	}

	labels := make([]string, len(opts.Columns))
	for i, name := range opts.Columns {
		labels[i] = strings.ToUpper(toSnakeCase(name))
	}

	cells := make([][]string, len(opts.Rows))
	for i, row := range opts.Rows {
		values, err := extractAttrs(structs.Map(row), opts.Columns)
		if err != nil {
			return nil, err
		}
		cells[i] = values
	}

	separator := " | "
	if opts.Separator != "" {
		separator = opts.Separator
	}

	widths := columnWidths(cells, labels, opts.ShowHeader)
	formats := make([]string, len(widths))
	tableWidth := len(separator) * (len(widths) - 1)
	for i, width := range widths {
		formats[i] = fmt.Sprintf("%%-%ds", width)
		tableWidth += width
	}

	var lines []string
	if opts.ShowHeader {
		headers := make([]string, len(labels))
		for i, label := range labels {
			headers[i] = fmt.Sprintf(formats[i], label)
		}
		rule := strings.Repeat("=", tableWidth)
		lines = append(lines, rule, strings.Join(headers, separator), rule)
	}

	var rowColors []*color.Color
	if len(opts.Colors) == len(opts.Rows) {
		rowColors = opts.Colors
	}

	for i, row := range cells {
		items := make([]string, len(row))
		for j, value := range row {
			if rowColors != nil && rowColors[i] != nil {
				items[j] = rowColors[i].Sprintf(formats[j], value)
			} else {
				items[j] = fmt.Sprintf(formats[j], value)
			}
		}
		lines = append(lines, strings.Join(items, separator))
	}
	return lines, nil
}

func extractAttrs(item map[string]interface{}, attrs []string) ([]string, error) {
	result := make([]string, len(attrs))
	for i, attr := range attrs {
		value, ok := item[attr]
		if !ok {
			return nil, fmt.Errorf("Item has no attribute: %s", attr)
		}
		result[i] = fmt.Sprintf("%v", value)
	}
	return result, nil
}

func columnWidths(rows [][]string, labels []string, includeLabels bool) []int {
	widths := make([]int, len(labels))
	if includeLabels {
		for i, label := range labels {
			widths[i] = len(label)
		}
	}
	for _, row := range rows {
		for i, value := range row {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}
	return widths
}

// toSnakeCase converts "DigestSize" to "digest_size"
func toSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteRune('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
