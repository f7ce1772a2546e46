// Package render writes validation reports and preset listings as styled
// text, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keycheck"
)

// Format is an output format.
type Format string

// Supported formats.
const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the Format named s; empty means Text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", pkgerrors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Preset is the listing entry of one preset.
type Preset struct {
	Name       string `json:"name" yaml:"name"`
	Characters string `json:"characters" yaml:"characters"`
	Size       int    `json:"size" yaml:"size"`
}

// Reports writes one report per key. keys and reports are matched by index.
func Reports(w io.Writer, keys []string, reports []keycheck.Report, f Format) error {
	switch f {
	case JSON:
		return encodeJSON(w, reports)
	case YAML:
		return encodeYAML(w, reports)
	case Text:
		return reportsText(w, keys, reports)
	default:
		return pkgerrors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// Presets writes the presets of table in listing order.
func Presets(w io.Writer, table alphabet.Table, f Format) error {
	var list []Preset

	for _, name := range table.Names() {
		a, err := table.Lookup(name)
		if err != nil {
			return err
		}

		list = append(list, Preset{Name: name, Characters: a.String(), Size: a.Len()})
	}

	switch f {
	case JSON:
		return encodeJSON(w, list)
	case YAML:
		return encodeYAML(w, list)
	case Text:
		return presetsText(w, list)
	default:
		return pkgerrors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

type styles struct {
	title   lipgloss.Style
	valid   lipgloss.Style
	invalid lipgloss.Style
	label   lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true),
		valid:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		invalid: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		label:   r.NewStyle().Faint(true),
		hint:    r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func reportsText(w io.Writer, keys []string, reports []keycheck.Report) error {
	var (
		s = newStyles(w)
		b strings.Builder
	)

	for i, report := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		title := "key"
		if report.KeyNumber != "" {
			title += " " + report.KeyNumber
		}

		if i < len(keys) {
			title += ": " + keys[i]
		}

		status := s.valid.Render("VALID")
		if !report.Valid {
			status = s.invalid.Render("INVALID")
		}

		fmt.Fprintln(&b, s.title.Render(title))
		fmt.Fprintf(&b, "  %s %s\n", s.label.Render("status: "), status)
		fmt.Fprintf(&b, "  %s %d (min %s, max %s)\n",
			s.label.Render("length: "), report.Length, bound(report.MinLength), bound(report.MaxLength))

		if report.ExpectedCharset != nil {
			fmt.Fprintf(&b, "  %s %s\n", s.label.Render("charset:"), strings.Join(report.ExpectedCharset, ""))
		}

		fmt.Fprintf(&b, "  %s\n", s.label.Render("reasons:"))

		for _, reason := range report.Reasons {
			fmt.Fprintf(&b, "    - %s\n", reason)
		}

		if len(report.Hints) > 0 {
			fmt.Fprintf(&b, "  %s\n", s.label.Render("hints:"))

			for _, hint := range report.Hints {
				fmt.Fprintf(&b, "    - %s\n", s.hint.Render(hint))
			}
		}
	}

	_, err := io.WriteString(w, b.String())

	return pkgerrors.Wrap(err, "failed to write reports")
}

func presetsText(w io.Writer, list []Preset) error {
	var (
		s     = newStyles(w)
		b     strings.Builder
		width int
	)

	for _, p := range list {
		width = max(width, len(p.Name))
	}

	fmt.Fprintln(&b, s.title.Render("Available presets:"))

	for _, p := range list {
		fmt.Fprintf(&b, " - %-*s  %s %s\n", width, p.Name, s.label.Render("("+strconv.Itoa(p.Size)+")"), p.Characters)
	}

	_, err := io.WriteString(w, b.String())

	return pkgerrors.Wrap(err, "failed to write presets")
}

func bound(p *int) string {
	if p == nil {
		return "-"
	}

	return strconv.Itoa(*p)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return pkgerrors.Wrap(enc.Encode(v), "failed to encode json")
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(v); err != nil {
		return pkgerrors.Wrap(err, "failed to encode yaml")
	}

	return pkgerrors.Wrap(enc.Close(), "failed to encode yaml")
}
