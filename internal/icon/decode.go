package icon

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Decode reads an SVG icon sheet into a node tree. XML syntax errors are
// returned; a well-formed document whose root element is not <svg> decodes
// to an empty Document.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return &Document{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("icon sheet: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if elementName(start.Name) != "svg" {
			return &Document{}, nil
		}
		kids, err := decodeChildren(dec)
		if err != nil {
			return nil, fmt.Errorf("icon sheet: %w", err)
		}
		return &Document{Children: kids}, nil
	}
}

// Load reads the icon sheet at path and extracts its icons.
func Load(path string, opts ...Option) (*Extractor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewExtractor(doc, opts...), nil
}

// decodeChildren consumes tokens up to and including the end of the
// current element.
func decodeChildren(dec *xml.Decoder) ([]Node, error) {
	var nodes []Node
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case xml.EndElement:
			return nodes, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (Node, error) {
	switch elementName(start.Name) {
	case "path":
		p := &Path{ID: attr(start, "id"), D: attr(start, "d")}
		// path content (titles, animations) is not part of the glyph
		return p, dec.Skip()
	case "g":
		kids, err := decodeChildren(dec)
		return &Group{Children: kids}, err
	default:
		kids, err := decodeChildren(dec)
		return &Other{Name: start.Name.Local, Children: kids}, err
	}
}

// elementName returns the local name of SVG elements and "" for elements
// from foreign namespaces.
func elementName(n xml.Name) string {
	if n.Space == "" || n.Space == svgNamespace {
		return n.Local
	}
	return ""
}

func attr(start xml.StartElement, name string) *string {
	for _, a := range start.Attr {
		if a.Name.Space == "" && a.Name.Local == name {
			v := a.Value
			return &v
		}
	}
	return nil
}
