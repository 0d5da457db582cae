package api

import (
	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/vault"
)

// Report is the JSON form of an outline, shared by the HTTP API and the
// outline command.
type Report struct {
	Path     string          `json:"path"`
	Mode     string          `json:"mode"`
	Show     bool            `json:"show"`
	Expanded bool            `json:"expanded"`
	Active   int             `json:"active"`
	Lines    int             `json:"lines,omitempty"`
	Progress *int            `json:"progress,omitempty"`
	Reading  *Reading        `json:"reading,omitempty"`
	Headings []ReportHeading `json:"headings"`
}

type ReportHeading struct {
	Index       int    `json:"index"`
	Level       int    `json:"level"`
	Text        string `json:"text"`
	Line        int    `json:"line"`
	Depth       int    `json:"depth"`
	Number      string `json:"number,omitempty"`
	Anchor      string `json:"anchor"`
	Visible     bool   `json:"visible"`
	HasChildren bool   `json:"has_children"`
	Collapsed   bool   `json:"collapsed"`
}

type Reading struct {
	CJK     int    `json:"cjk"`
	Latin   int    `json:"latin"`
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

// NewReport converts an outline snapshot for output.
func NewReport(o navigator.Outline, mode navigator.Mode) Report {
	anchors := vault.Anchors(o.Headings)
	rep := Report{
		Path:     o.Path,
		Mode:     mode.String(),
		Show:     o.Show,
		Expanded: o.Expanded,
		Active:   o.Active,
		Headings: make([]ReportHeading, o.Len()),
	}
	if o.Lines > 0 {
		rep.Lines = o.Lines
		progress := o.Progress
		rep.Progress = &progress
	}
	for i, h := range o.Headings {
		rep.Headings[i] = ReportHeading{
			Index:       i,
			Level:       h.Level,
			Text:        h.Text,
			Line:        h.StartLine,
			Depth:       o.Depth[i],
			Number:      o.Number[i],
			Anchor:      anchors[i],
			Visible:     o.Visible[i],
			HasChildren: o.HasChildren[i],
			Collapsed:   o.Collapsed[i],
		}
	}
	return rep
}

// NewReading computes reading statistics for a report.
func NewReading(wc markdown.WordCount, cjkPerMin, latinPerMin int) *Reading {
	minutes := markdown.ReadingTime(wc, cjkPerMin, latinPerMin)
	return &Reading{
		CJK:     wc.CJK,
		Latin:   wc.Latin,
		Minutes: minutes,
		Label:   markdown.ReadingLabel(minutes),
	}
}
