package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pfassina/tocnav/internal/markdown"
	"github.com/pfassina/tocnav/internal/navigator"
	"github.com/pfassina/tocnav/internal/outline"
)

type headingRequest struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// outlineRequest carries either raw markdown content or a parsed heading
// list. Option fields left out fall back to the server's config.
type outlineRequest struct {
	Path      string           `json:"path"`
	Content   *string          `json:"content"`
	Headings  []headingRequest `json:"headings"`
	Collapsed []int            `json:"collapsed"`
	Mode      string           `json:"mode"`
	Cursor    int              `json:"cursor"`
	Scroll    float64          `json:"scroll"`
	// Lines is the document length for reading progress. It is taken from
	// content when that is given.
	Lines int `json:"lines"`

	SkipHeading1          *bool `json:"skip_heading1"`
	UseHeadingNumber      *bool `json:"use_heading_number"`
	ShowWhenSingleHeading *bool `json:"show_when_single_heading"`
	AlwaysExpand          *bool `json:"always_expand"`
	MinLevel              *int  `json:"min_level"`
	MaxLevel              *int  `json:"max_level"`
}

func (req outlineRequest) options(base navigator.Options) navigator.Options {
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.SkipHeading1, req.SkipHeading1)
	set(&base.UseHeadingNumber, req.UseHeadingNumber)
	set(&base.ShowWhenSingleHeading, req.ShowWhenSingleHeading)
	set(&base.AlwaysExpand, req.AlwaysExpand)
	if req.MinLevel != nil {
		base.MinLevel = *req.MinLevel
	}
	if req.MaxLevel != nil {
		base.MaxLevel = *req.MaxLevel
	}
	return base
}

func checkLevels(opts navigator.Options) error {
	lo, hi := max(opts.MinLevel, 1), opts.MaxLevel
	if hi <= 0 {
		hi = 6
	}
	if lo > 6 || hi > 6 || lo > hi {
		return fmt.Errorf("level range %d..%d is not within 1..6", opts.MinLevel, opts.MaxLevel)
	}
	return nil
}

func lineCount(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(content, "\n"), "\n") + 1
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	var req outlineRequest
	if err := decode(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content != nil && len(req.Headings) > 0 {
		jsonError(w, "give either content or headings, not both", http.StatusBadRequest)
		return
	}
	mode, err := navigator.ParseMode(req.Mode)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := req.options(navigator.OptionsFromConfig(s.cfg))
	if err := checkLevels(opts); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Lines < 0 {
		jsonError(w, "lines must not be negative", http.StatusBadRequest)
		return
	}
	sess := navigator.New(opts, s.log)

	var (
		headings []outline.Heading
		doc      *markdown.Document
	)
	if req.Content != nil {
		doc = s.parser.Parse([]byte(*req.Content))
		headings = doc.Headings
	} else {
		headings = make([]outline.Heading, len(req.Headings))
		for i, h := range req.Headings {
			headings[i] = outline.Heading{Level: h.Level, Text: h.Text, StartLine: h.Line}
		}
		if err := outline.Validate(headings); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	sess.SetDocument(req.Path, headings)
	sess.SetLineCount(req.Lines)
	if doc != nil {
		sess.SetExpanded(markdown.Expanded(doc.Frontmatter, opts.AlwaysExpand))
		sess.SetLineCount(lineCount(*req.Content))
	}
	for _, i := range req.Collapsed {
		if i < 0 || i >= len(sess.Headings()) {
			jsonError(w, "collapsed index out of range", http.StatusBadRequest)
			return
		}
		if !sess.IsCollapsed(i) {
			sess.Toggle(i)
		}
	}

	pos := float64(req.Cursor)
	if mode == navigator.ModePreview {
		pos = req.Scroll
	}

	rep := NewReport(sess.Compute(mode, pos), mode)
	if doc != nil {
		wc := markdown.CountWords(doc.Body(), navigator.CountOptions(s.cfg))
		rep.Reading = NewReading(wc, s.cfg.Reading.CJKPerMinute, s.cfg.Reading.LatinPerMinute)
	}
	writeJSON(w, rep)
}
