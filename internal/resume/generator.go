// Package resume renders the downloadable resume PDF.
package resume

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// ContentType is the MIME type of the generated document
const ContentType = "application/pdf"

// Page geometry in points
const (
	marginLeft   = 72.0
	marginRight  = 72.0
	marginTop    = 72.0
	marginBottom = 18.0
)

// Pinned so identical content renders to identical bytes
var documentDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type textStyle struct {
	size       float64
	bold       bool
	leading    float64
	spaceAfter float64
	align      string
	r, g, b    int
}

var (
	titleStyle      = textStyle{size: 24, bold: true, leading: 29, spaceAfter: 30, align: "C", b: 255}
	headingStyle    = textStyle{size: 14, bold: true, leading: 17, spaceAfter: 12, align: "L", b: 255}
	subtitleStyle   = textStyle{size: 14, bold: true, leading: 17, spaceAfter: 6, align: "L"}
	subheadingStyle = textStyle{size: 12, bold: true, leading: 14, spaceAfter: 4, align: "L"}
	bodyStyle       = textStyle{size: 10, leading: 12, align: "L"}
)

// Generate renders the resume and returns the complete PDF document
func Generate() ([]byte, error) {
	return render(true)
}

func render(compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetCompression(compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetTitle("Nikhil Kumar Bandi - Resume", true)
	pdf.SetAuthor("Nikhil Kumar Bandi", true)
	pdf.SetCreator("portfolio-api", true)

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()

	w.text(titleStyle, fullName)
	w.text(subtitleStyle, headline)
	w.space(12)

	w.rich(bodyStyle,
		"<b>Email:</b> "+email+"<br>"+
			"<b>Location:</b> "+location+"<br>"+
			"<b>Status:</b> "+status)
	w.space(20)

	w.text(headingStyle, "PROFESSIONAL SUMMARY")
	w.text(bodyStyle, summary)
	w.space(20)

	w.text(headingStyle, "WORK EXPERIENCE")
	for i, role := range experience {
		w.rich(subheadingStyle, "<b>"+role.Title+"</b> - "+role.Company)
		w.text(bodyStyle, role.Tenure)
		w.bullets(bodyStyle, role.Highlights)
		if i < len(experience)-1 {
			w.space(15)
		}
	}
	w.space(20)

	w.text(headingStyle, "TECHNICAL SKILLS")
	skillLines := ""
	for i, skill := range skills {
		if i > 0 {
			skillLines += "<br>"
		}
		skillLines += "<b>" + skill.Label + ":</b> " + skill.Value
	}
	w.rich(bodyStyle, skillLines)
	w.space(20)

	w.text(headingStyle, "EDUCATION")
	w.text(subheadingStyle, degree)
	w.text(bodyStyle, university)
	w.space(15)

	w.text(headingStyle, "CERTIFICATIONS")
	w.bullets(bodyStyle, certifications)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render resume: %w", err)
	}
	return buf.Bytes(), nil
}

// writer flows styled blocks down the page
type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *writer) apply(s textStyle) {
	fontStyle := ""
	if s.bold {
		fontStyle = "B"
	}
	w.pdf.SetFont("Helvetica", fontStyle, s.size)
	w.pdf.SetTextColor(s.r, s.g, s.b)
}

func (w *writer) text(s textStyle, content string) {
	w.apply(s)
	w.pdf.MultiCell(0, s.leading, w.tr(content), "", s.align, false)
	w.space(s.spaceAfter)
}

// rich writes a block containing <b> and <br> markup. Entities are not decoded.
func (w *writer) rich(s textStyle, markup string) {
	w.apply(s)
	w.pdf.SetX(marginLeft)
	h := w.pdf.HTMLBasicNew()
	h.Write(s.leading, w.tr(markup))
	w.pdf.Ln(s.leading)
	w.space(s.spaceAfter)
}

func (w *writer) bullets(s textStyle, items []string) {
	w.apply(s)
	for _, item := range items {
		w.pdf.MultiCell(0, s.leading, w.tr("• "+item), "", s.align, false)
	}
	w.space(s.spaceAfter)
}

func (w *writer) space(h float64) {
	if h > 0 {
		w.pdf.Ln(h)
	}
}
