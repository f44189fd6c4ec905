// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/sidharthbh8/zowe-cli/internal/config"
)

// Formats accepted by --output.
var Formats = []string{"text", "json", "yaml", "raw"}

// Response is the envelope every command produces. CommandResponse is the
// human message; APIResponse is the structured result.
type Response struct {
	Success         bool        `json:"success" yaml:"success"`
	CommandResponse string      `json:"commandResponse" yaml:"commandResponse"`
	APIResponse     interface{} `json:"apiResponse,omitempty" yaml:"apiResponse,omitempty"`
}

// Options controls Spit.
type Options struct {
	Format string
	Color  bool
	// Table follows the text output with a key/value table of the API
	// response.
	Table bool
	// Hide lists dotted API response keys left out of the table.
	Hide []string
}

// Spit writes resp to w in the requested format. If w is nil, os.Stdout is
// used.
func Spit(resp Response, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "raw":
		// If raw, just dump the API payload and go home.
		if resp.APIResponse == nil {
			return writeText(w, resp.CommandResponse)
		}
		b, err := json.Marshal(resp.APIResponse)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "", "text":
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}

	if err := writeText(w, resp.CommandResponse); err != nil {
		return err
	}
	if opts.Table && resp.APIResponse != nil {
		rows, err := Flatten(resp.APIResponse, opts.Hide...)
		if err != nil {
			return err
		}
		TableWriter(rows, opts.Color, w)
	}
	return nil
}

func writeText(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Flatten turns v into dotted key/value rows in document order. Multi-line
// strings and hidden keys are skipped.
func Flatten(v interface{}, hide ...string) ([][]string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	hidden := make(map[string]bool, len(hide))
	for _, h := range hide {
		hidden[h] = true
	}

	var rows [][]string
	var walk func(prefix string, r gjson.Result)
	walk = func(prefix string, r gjson.Result) {
		if hidden[prefix] {
			return
		}
		if r.IsObject() || r.IsArray() {
			i := 0
			r.ForEach(func(k, child gjson.Result) bool {
				key := k.String()
				if r.IsArray() {
					key = strconv.Itoa(i)
				}
				i++
				if prefix != "" {
					key = prefix + "." + key
				}
				walk(key, child)
				return true
			})
			return
		}
		value := InterfaceToString(r.Value(), "-")
		if strings.Contains(value, "\n") {
			return
		}
		rows = append(rows, []string{prefix, value})
	}
	walk("", gjson.ParseBytes(b))
	return rows, nil
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	// A false flag is an answer, not a missing value.
	if b, ok := value.(bool); ok {
		return strconv.FormatBool(b)
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// TableWriter renders key/value rows in a borderless two column table. If w
// is nil, os.Stdout is used.
func TableWriter(rows [][]string, withColor bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	var (
		keyStyle   = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		valueStyle = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	if withColor {
		keyColor, valueColor := getColors("colors")
		keyStyle = keyStyle.Foreground(keyColor)
		valueStyle = valueStyle.Foreground(valueColor)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return valueStyle.PaddingLeft(2) //nolint:mnd
		}).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background so output is reasonably visible for
// light and dark themes.
func getColors(key string) (keys, values color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	keys = resolveColor(key+".title", "#b08800", "#f6be00")
	values = resolveColor(key+".even", "#333333", "#ffffff")

	return
}
