package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	marginMM  = 20.0
	ptToMM    = 25.4 / 72
	leading   = 1.2
	fontName  = "Helvetica"
	pageSize  = "A4"
	docFormat = "P"
)

var fontSizes = map[Style]float64{
	StyleTitle:      18,
	StyleSubheading: 14,
	StyleHeading:    12,
	StyleBody:       10,
	StyleStrong:     10,
}

// RenderError wraps a failure of the PDF engine.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "render pdf: " + e.Err.Error() }

func (e *RenderError) Unwrap() error { return e.Err }

// defaultTitle is the document title when the profile has no name.
const defaultTitle = "Portfolio"

// Renderer draws snapshots as PDF documents.
type Renderer struct {
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles content stream compression. It is on by default.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the PDF bytes for s. The profile name, when present,
// becomes the document title.
func (r *Renderer) Render(s Snapshot) ([]byte, error) {
	title := defaultTitle
	if s.Profile != nil && s.Profile.Name != "" {
		title = s.Profile.Name
	}

	doc, err := r.build(title, Layout(s))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// build lays lines out on pages. fpdf reports most failures through its
// sticky error, but some paths panic; both surface as *RenderError.
func (r *Renderer) build(title string, lines []Line) (doc *fpdf.Fpdf, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, &RenderError{Err: fmt.Errorf("engine panic: %v", rec)}
		}
	}()

	doc = fpdf.New(docFormat, "mm", pageSize, "")
	doc.SetCompression(r.compress)
	doc.SetTitle(title, true)
	doc.SetCreator("portfolio", true)
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)
	doc.AddPage()

	// core fonts are cp1252; the translator maps UTF-8 input onto it
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, l := range lines {
		if l.Style == StyleSpacer {
			doc.Ln(l.Space * ptToMM)
			continue
		}

		size := fontSizes[l.Style]
		h := size * ptToMM * leading

		switch l.Style {
		case StyleTitle:
			doc.SetFont(fontName, "B", size)
			doc.MultiCell(0, h, tr(l.Text), "", "C", false)
		case StyleSubheading, StyleHeading, StyleStrong:
			doc.SetFont(fontName, "B", size)
			doc.MultiCell(0, h, tr(l.Text), "", "L", false)
		default:
			if l.Label != "" {
				doc.SetFont(fontName, "B", size)
				doc.Write(h, tr(l.Label))
			}
			doc.SetFont(fontName, "", size)
			doc.Write(h, tr(l.Text))
			doc.Ln(h)
		}

		if doc.Err() {
			return nil, &RenderError{Err: doc.Error()}
		}
	}

	if doc.Err() {
		return nil, &RenderError{Err: doc.Error()}
	}
	return doc, nil
}
