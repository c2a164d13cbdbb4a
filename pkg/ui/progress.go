package ui

import (
	"io"

	"github.com/arthur-debert/fxconv/pkg/types"
	"github.com/pterm/pterm"
)

// Progress shows one step per archive. A disabled Progress does nothing.
type Progress struct {
	bar *pterm.ProgressbarPrinter
}

// NewProgress starts a progress bar on out when enabled
func NewProgress(out io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Converting").
		WithWriter(out).
		WithRemoveWhenDone(true).
		Start()
	if err != nil {
		return &Progress{}
	}
	return &Progress{bar: bar}
}

// OnArchive advances the bar; it matches reorganize.ArchiveFunc
func (p *Progress) OnArchive(index, total int, archive types.InputArchive) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(archive.Name())
	if index > 0 {
		p.bar.Increment()
	}
}

// Stop completes and removes the bar
func (p *Progress) Stop() {
	if p.bar == nil {
		return
	}
	if p.bar.Current < p.bar.Total {
		p.bar.Add(p.bar.Total - p.bar.Current)
	}
	_, _ = p.bar.Stop()
}
