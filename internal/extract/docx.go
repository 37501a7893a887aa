package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// extractDOCX walks the OPC package's word/document.xml and concatenates
// paragraph text. Table cell text comes through the same token stream.
// No third-party DOCX reader exists in our stack; the format is a zip of
// WordprocessingML, which the stdlib handles directly.
func extractDOCX(ctx context.Context, data []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, &ExtractionError{Reason: ReasonParseFailed, Err: fmt.Errorf("open docx package: %w", err)}
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return Result{}, &ExtractionError{Reason: ReasonParseFailed, Err: errors.New("docx package has no word/document.xml")}
	}

	rc, err := doc.Open()
	if err != nil {
		return Result{}, &ExtractionError{Reason: ReasonParseFailed, Err: fmt.Errorf("open document.xml: %w", err)}
	}
	defer rc.Close()

	text, err := wordprocessingText(ctx, rc)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text}, nil
}

// wordprocessingText scans WordprocessingML tokens: <w:t> runs accumulate
// into the current paragraph, </w:p> ends it, <w:tab/> and <w:br/> become
// whitespace.
func wordprocessingText(ctx context.Context, r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var (
		b         strings.Builder
		paragraph strings.Builder
		inText    bool
	)
	flush := func() {
		line := strings.TrimRight(paragraph.String(), " ")
		paragraph.Reset()
		if strings.TrimSpace(line) == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &ExtractionError{Reason: ReasonParseFailed, Err: fmt.Errorf("decode document.xml: %w", err)}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteString(" ")
			case "br":
				paragraph.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flush()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	flush()
	return b.String(), nil
}
