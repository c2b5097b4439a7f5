package embed

import "github.com/alexisbeaulieu97/skyui/internal/design"

// Kind identifies the primitive a Node renders as.
type Kind int

const (
	KindView Kind = iota
	KindRow
	KindImage
	KindText
	KindSpacer
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindRow:
		return "row"
	case KindImage:
		return "image"
	case KindText:
		return "text"
	case KindSpacer:
		return "spacer"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// Roles name the parts of an embed so styles and tests can address them.
const (
	RoleEmpty           = "empty"
	RoleImagesContainer = "imagesContainer"
	RoleImagePair       = "imagePair"
	RoleImagePairItem   = "imagePairItem"
	RoleImageWide       = "imageWide"
	RoleImageWideItem   = "imageWideItem"
	RoleImageBig        = "imageBig"
	RoleImageBigItem    = "imageBigItem"
	RoleWidthSpacer     = "imagesWidthSpacer"
	RoleHeightSpacer    = "imagesHeightSpacer"
	RoleExtOuter        = "extOuter"
	RoleExtThumb        = "extThumb"
	RoleExtTitle        = "extTitle"
	RoleExtURL          = "extUrl"
	RoleExtDescription  = "extDescription"
)

// Node is one element of a render tree.
type Node struct {
	Kind  Kind
	Role  string
	Style design.Style

	// URI is the image source for images and the target for links.
	URI         string
	FullSizeURI string

	Text string
	// Lines clamps text to a number of lines; zero means unlimited.
	Lines int

	Children []Node
}

// IsEmpty reports whether the node is a bare placeholder view.
func (n Node) IsEmpty() bool {
	return n.Kind == KindView && len(n.Children) == 0
}

// Find returns every node in the tree with the given role, depth first.
func (n Node) Find(role string) []Node {
	var out []Node
	n.walk(func(node Node) {
		if node.Role == role {
			out = append(out, node)
		}
	})
	return out
}

// Count returns the number of nodes of the given kind in the tree.
func (n Node) Count(kind Kind) int {
	count := 0
	n.walk(func(node Node) {
		if node.Kind == kind {
			count++
		}
	})
	return count
}

func (n Node) walk(fn func(Node)) {
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}
