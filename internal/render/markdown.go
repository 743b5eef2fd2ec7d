package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mugiliam/labcatalog/pkg/types"
)

// Page is the content of one catalog document page.
type Page interface {
	Name() string
	Title() string
	Description() string
	Website() string
	Entries() []types.CatalogEntry
}

// Markdown writes the full page of a catalog document: heading, company
// description and product table.
func Markdown(w io.Writer, p Page) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n\n", strings.TrimSpace(p.Title()))
	if d := strings.TrimSpace(p.Description()); d != "" {
		fmt.Fprintf(bw, "%s\n\n", d)
	}
	if p.Website() != "" {
		fmt.Fprintf(bw, "Website: [%s](%s)\n\n", p.Website(), escapeURL(p.Website()))
	}
	writeTable(bw, Table(p.Entries()))
	return bw.Flush()
}

// WriteTable writes only the product table for entries.
func WriteTable(w io.Writer, entries []types.CatalogEntry) error {
	bw := bufio.NewWriter(w)
	writeTable(bw, Table(entries))
	return bw.Flush()
}

func writeTable(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "| %s | %s | %s |\n", Header[0], Header[1], Header[2])
	fmt.Fprintln(w, "|-|-|-|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %s | %s |\n", r.Description, r.Image, r.Definition)
	}
}

// Index writes the page that links every catalog document.
func Index(w io.Writer, pages []Page) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "# Labware catalog\n\n")
	fmt.Fprintln(bw, "| Manufacturer | Entries |")
	fmt.Fprintln(bw, "|-|-|")
	for _, p := range pages {
		fmt.Fprintf(bw, "| [%s](%s.md) | %d |\n", escapeCell(p.Title()), p.Name(), len(p.Entries()))
	}
	return bw.Flush()
}
