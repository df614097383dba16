package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/johnquangdev/transcript-processor/internal/domain/entities"
)

// RenderDocx renders the record as a minimal WordprocessingML package:
// a zip containing the content-type map, the package relationships, and
// word/document.xml. Headings are styled with direct run formatting so no
// styles part is needed.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// RenderDocx renders a MinutesRecord as a DOCX byte buffer
func RenderDocx(rec *entities.MinutesRecord) ([]byte, error) {
	var body strings.Builder

	// Title
	writeDocxParagraph(&body, docTitle, runProps{Bold: true, HalfPoints: 56, Center: true})
	for _, line := range metadataLines(rec) {
		writeDocxParagraph(&body, line, runProps{})
	}
	writeDocxParagraph(&body, "", runProps{})

	for _, sec := range buildSections(rec) {
		writeDocxParagraph(&body, sec.Heading, runProps{Bold: true, HalfPoints: 32})
		for _, bullet := range sec.Bullets {
			writeDocxParagraph(&body, "• "+bullet, runProps{})
		}
		writeDocxParagraph(&body, "", runProps{})
	}

	if rows := actionTableRows(rec); len(rows) > 0 {
		writeDocxParagraph(&body, "Action Items", runProps{Bold: true, HalfPoints: 32})
		writeDocxTable(&body, rows)
	}

	documentXML := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s</w:body></w:document>`, body.String())

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create docx part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write docx part %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize docx package: %w", err)
	}

	return buf.Bytes(), nil
}

type runProps struct {
	Bold       bool
	HalfPoints int // font size in half-points, 0 for document default
	Center     bool
}

func writeDocxParagraph(b *strings.Builder, text string, props runProps) {
	b.WriteString("<w:p>")
	if props.Center {
		b.WriteString(`<w:pPr><w:jc w:val="center"/></w:pPr>`)
	}
	b.WriteString("<w:r>")
	if props.Bold || props.HalfPoints > 0 {
		b.WriteString("<w:rPr>")
		if props.Bold {
			b.WriteString("<w:b/>")
		}
		if props.HalfPoints > 0 {
			fmt.Fprintf(b, `<w:sz w:val="%d"/>`, props.HalfPoints)
		}
		b.WriteString("</w:rPr>")
	}
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	b.WriteString("</w:r></w:p>")
}

func writeDocxTable(b *strings.Builder, rows [][4]string) {
	b.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4"/><w:bottom w:val="single" w:sz="4"/>` +
		`<w:left w:val="single" w:sz="4"/><w:right w:val="single" w:sz="4"/>` +
		`<w:insideH w:val="single" w:sz="4"/><w:insideV w:val="single" w:sz="4"/>` +
		`</w:tblBorders></w:tblPr>`)

	writeDocxTableRow(b, actionTableHeader, true)
	for _, row := range rows {
		writeDocxTableRow(b, row, false)
	}

	b.WriteString("</w:tbl>")
}

func writeDocxTableRow(b *strings.Builder, cells [4]string, header bool) {
	b.WriteString("<w:tr>")
	for _, cell := range cells {
		b.WriteString("<w:tc><w:p><w:r>")
		if header {
			b.WriteString("<w:rPr><w:b/></w:rPr>")
		}
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(cell))
		b.WriteString("</w:r></w:p></w:tc>")
	}
	b.WriteString("</w:tr>")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
