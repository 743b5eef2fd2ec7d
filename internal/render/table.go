// Package render turns catalog entries into markdown documentation pages.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mugiliam/labcatalog/pkg/types"
)

// Header holds the column titles of the product table.
var Header = [3]string{"Description", "Image", "PLR definition"}

const lineBreak = "<br>"

// Row is one rendered table row. Cells are already escaped for markdown.
type Row struct {
	Description string
	Image       string
	Definition  string
}

// Table renders exactly one row per entry, in input order.
func Table(entries []types.CatalogEntry) []Row {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			Description: DescriptionCell(e),
			Image:       ImageCell(e.Images),
			Definition:  DefinitionCell(e),
		})
	}
	return rows
}

func DescriptionCell(e types.CatalogEntry) string {
	var parts []string
	if e.Description != "" {
		parts = append(parts, "'"+escapeCell(e.Description)+"'")
	}
	if e.PartNumber != "" {
		parts = append(parts, "Part no.: "+escapeCell(e.PartNumber))
	}
	if e.ManufacturerURL != "" {
		parts = append(parts, "[manufacturer website]("+escapeURL(e.ManufacturerURL)+")")
	}
	for _, n := range e.MaterialNotes {
		parts = append(parts, "- "+escapeCell(n))
	}
	if e.CompatibilityWarning != "" {
		parts = append(parts, "**Warning:** "+escapeCell(e.CompatibilityWarning))
	}
	return strings.Join(parts, lineBreak)
}

func ImageCell(images []types.Image) string {
	tags := make([]string, 0, len(images))
	for _, img := range images {
		tag := fmt.Sprintf(`<img src="%s" alt="%s"`, html.EscapeString(img.Path), html.EscapeString(img.Alt))
		if img.Width != "" {
			tag += fmt.Sprintf(` width="%s"`, html.EscapeString(img.Width))
		}
		tags = append(tags, tag+">")
	}
	return strings.Join(tags, lineBreak)
}

func DefinitionCell(e types.CatalogEntry) string {
	if e.DefinitionSymbol == "" {
		return ""
	}
	return "`" + e.DefinitionSymbol + "`"
}

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", lineBreak,
	"\n", lineBreak,
	"\r", lineBreak,
)

// escapeCell keeps free text from breaking the table layout.
func escapeCell(s string) string {
	return cellReplacer.Replace(strings.TrimSpace(s))
}

var urlReplacer = strings.NewReplacer(
	" ", "%20",
	"(", "%28",
	")", "%29",
	"|", "%7C",
)

func escapeURL(u string) string {
	return urlReplacer.Replace(strings.TrimSpace(u))
}
