package export

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/sameernimse09/pdf-data-extractor/model"
)

// renderHTML produces a standalone page holding the table. Cell
// content goes through the renderer as text nodes, so markup in cells
// is escaped, not interpreted.
func renderHTML(t *model.Table) ([]byte, error) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	title := element(atom.Title)
	title.AppendChild(text(sheetName))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body)
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "border", Val: "1"}}

	thead := element(atom.Thead)
	headRow := element(atom.Tr)
	for _, col := range t.Columns {
		th := element(atom.Th)
		th.AppendChild(text(col))
		headRow.AppendChild(th)
	}
	thead.AppendChild(headRow)
	table.AppendChild(thead)

	tbody := element(atom.Tbody)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			td := element(atom.Td)
			td.AppendChild(text(cell))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	body.AppendChild(table)
	root.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("html render: %w", err)
	}
	return buf.Bytes(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
