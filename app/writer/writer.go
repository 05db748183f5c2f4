package writer

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/brasil-epg/grabber/app/pipeline"
)

// Writer renders the sorted record list into one XMLTV file.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Run writes the document and returns the output path. The filename is
// "<service>_epg.xml" when a single service ran (serviceName hint set),
// otherwise "epg.xml".
func (w *Writer) Run(records []*pipeline.Record, serviceName, outputDir string) (string, error) {
	filename := "epg.xml"
	if serviceName != "" {
		filename = slugify(serviceName) + "_epg.xml"
	}

	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, filename)

	tv := BuildTV(records)

	out, err := xml.MarshalIndent(tv, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal guide: %w", err)
	}

	document := xml.Header + string(out) + "\n"
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("failed to write guide: %w", err)
	}

	return path, nil
}

// slugify lowercases a service name and strips diacritics so "Band São
// Paulo" yields "band_sao_paulo".
func slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if plain, _, err := transform.String(t, name); err == nil {
		name = plain
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
