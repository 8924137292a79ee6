// Package pdftest builds small valid PDF documents for tests, with
// correct cross-reference offsets so real parsers accept them.
package pdftest

import (
	"fmt"
	"strconv"
	"strings"
)

// TextPDF returns a single-page PDF whose only content is text drawn
// near the top of the page.
func TextPDF(text string) []byte {
	return PagesPDF(text)
}

// PagesPDF returns a PDF with one page per element of texts, in order.
func PagesPDF(texts ...string) []byte {
	if len(texts) == 0 {
		texts = []string{""}
	}
	n := len(texts)

	// Object layout: 1 catalog, 2 pages, then a page/content pair per
	// text, then a shared font object last.
	total := 2 + 2*n + 1
	fontObj := total

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, total+1)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, n)
	for i := range texts {
		kids[i] = strconv.Itoa(3+2*i) + " 0 R"
	}
	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [" + strings.Join(kids, " ") + "] /Count " + strconv.Itoa(n) + " >>\nendobj\n")

	for i, text := range texts {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1

		offsets[pageObj] = b.Len()
		b.WriteString(strconv.Itoa(pageObj) + " 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents " +
			strconv.Itoa(contentObj) + " 0 R /Resources << /Font << /F1 " + strconv.Itoa(fontObj) + " 0 R >> >> >>\nendobj\n")

		// 24pt Helvetica keeps the glyphs large enough for OCR at
		// typical rasterization settings.
		stream := "BT\n/F1 24 Tf\n72 720 Td\n(" + escape(text) + ") Tj\nET"
		offsets[contentObj] = b.Len()
		b.WriteString(strconv.Itoa(contentObj) + " 0 obj\n<< /Length " + strconv.Itoa(len(stream)) + " >>\nstream\n" +
			stream + "\nendstream\nendobj\n")
	}

	offsets[fontObj] = b.Len()
	b.WriteString(strconv.Itoa(fontObj) + " 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefOffset := b.Len()
	b.WriteString("xref\n0 " + strconv.Itoa(total+1) + "\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= total; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	b.WriteString("trailer\n<< /Size " + strconv.Itoa(total+1) + " /Root 1 0 R >>\nstartxref\n")
	b.WriteString(strconv.Itoa(xrefOffset))
	b.WriteString("\n%%EOF\n")

	return []byte(b.String())
}

func escape(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "(", `\(`)
	text = strings.ReplaceAll(text, ")", `\)`)
	return text
}
