// Package ui renders command results for people and for scripts.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/arthur-debert/fxconv/pkg/convert"
	"github.com/arthur-debert/fxconv/pkg/errors"
	"github.com/arthur-debert/fxconv/pkg/rules"
	"github.com/arthur-debert/fxconv/pkg/ui/output/styles"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes command output
type Renderer struct {
	out    io.Writer
	format Format
}

// NewRenderer creates a renderer. FormatAuto is resolved against out when
// it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, out io.Writer) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if f, ok := out.(*os.File); ok {
			format = DetectFormat(f)
		}
	}
	return &Renderer{out: out, format: format}
}

// Format returns the resolved format
func (r *Renderer) Format() Format {
	return r.format
}

// SummaryView is the serializable shape of a conversion summary
type SummaryView struct {
	Output   string         `yaml:"output"`
	Size     int64          `yaml:"size"`
	Archives int            `yaml:"archives"`
	Files    int            `yaml:"files"`
	Types    map[string]int `yaml:"types,omitempty"`
}

// NewSummaryView condenses a conversion result. Files and types are taken
// from the generated manifest, so overwritten files and undeclared
// containers are not counted.
func NewSummaryView(res *convert.Result, archives int) SummaryView {
	view := SummaryView{
		Output:   res.OutputPath,
		Size:     res.Size,
		Archives: archives,
		Types:    map[string]int{},
	}
	if res.Manifest == nil {
		return view
	}
	view.Files = len(res.Manifest.Files)
	for _, df := range res.Manifest.DataFiles {
		view.Types[df.DataType]++
	}
	return view
}

// RenderSummary reports a finished conversion
func (r *Renderer) RenderSummary(res *convert.Result, archives int) error {
	view := NewSummaryView(res, archives)
	if r.format == FormatYAML {
		return r.yaml(view)
	}

	w := &lineWriter{w: r.out}
	w.line(styles.Render("Success", "Conversion complete"))
	w.line(styles.Render("Label", "Output") + styles.Render("FilePath", view.Output))
	w.line(styles.Render("Label", "Size") + humanize.Bytes(uint64(view.Size)))
	w.line(styles.Render("Label", "Archives") + fmt.Sprint(view.Archives))
	w.line(styles.Render("Label", "Files") + fmt.Sprint(view.Files))

	if len(view.Types) > 0 {
		w.line(styles.Render("Label", "Declared"))
		for _, t := range sortedTypes(view.Types) {
			w.line(styles.Render("Indent", fmt.Sprintf("%s %d", styles.Render("DataType", t), view.Types[t])))
		}
	}
	return w.err
}

// RenderRules prints a rule table in order of precedence
func (r *Renderer) RenderRules(list []rules.Rule) error {
	switch r.format {
	case FormatYAML:
		return r.yaml(map[string][]rules.Rule{"data_files": list})
	case FormatTerminal:
		data := pterm.TableData{{"#", "Pattern", "Type"}}
		for i, rule := range list {
			data = append(data, []string{fmt.Sprint(i + 1), rule.Pattern, rule.DataType})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot render rules table")
		}
		_, err = fmt.Fprintln(r.out, table)
		return err
	default:
		w := &lineWriter{w: r.out}
		for _, rule := range list {
			w.line(fmt.Sprintf("%-28s %s", rule.Pattern, rule.DataType))
		}
		return w.err
	}
}

// RenderError prints err, with its stage when known
func (r *Renderer) RenderError(err error) error {
	msg := err.Error()
	if stage, ok := errors.GetErrorDetails(err)[errors.DetailStage].(string); ok && stage != "" {
		msg = fmt.Sprintf("%s failed: %s", stage, msg)
	}
	_, werr := fmt.Fprintln(r.out, styles.Render("Error", "Error: ")+msg)
	return werr
}

// RenderMessage prints a single informational line
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, styles.Render("Info", msg))
	return err
}

func (r *Renderer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode yaml")
	}
	return enc.Close()
}

func sortedTypes(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lineWriter keeps the first write error
type lineWriter struct {
	w   io.Writer
	err error
}

func (l *lineWriter) line(s string) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintln(l.w, s)
}
