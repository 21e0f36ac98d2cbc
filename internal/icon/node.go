package icon

// Node is an element of a parsed icon sheet. The set of implementations is
// closed: *Document, *Group, *Path and *Other.
type Node interface {
	node()
}

// Document is the <svg> root of an icon sheet.
type Document struct {
	Children []Node
}

// Group is a <g> element.
type Group struct {
	Children []Node
}

// Path is a <path> element. ID and D are nil when the attribute is absent.
type Path struct {
	ID *string
	D  *string
}

// Other is any element that is not svg, g or path.
type Other struct {
	Name     string
	Children []Node
}

func (*Document) node() {}
func (*Group) node()    {}
func (*Path) node()     {}
func (*Other) node()    {}

// children returns the child list of container nodes and nil for paths.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Document:
		return n.Children
	case *Group:
		return n.Children
	case *Other:
		return n.Children
	}
	return nil
}
