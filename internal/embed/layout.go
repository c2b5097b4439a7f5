package embed

// Layout is the fixed template an image set is arranged in.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutSingle
	LayoutPair
	LayoutWidePair
	LayoutTwoPairs
)

func (l Layout) String() string {
	switch l {
	case LayoutSingle:
		return "single"
	case LayoutPair:
		return "pair"
	case LayoutWidePair:
		return "wide+pair"
	case LayoutTwoPairs:
		return "two-pairs"
	default:
		return "none"
	}
}

// LayoutFor maps an image count to its layout. Counts outside 1..4 have no layout.
func LayoutFor(count int) Layout {
	switch count {
	case 1:
		return LayoutSingle
	case 2:
		return LayoutPair
	case 3:
		return LayoutWidePair
	case 4:
		return LayoutTwoPairs
	default:
		return LayoutNone
	}
}

// Rows returns the image indexes of each row of the layout, top to bottom.
func (l Layout) Rows() [][]int {
	switch l {
	case LayoutSingle:
		return [][]int{{0}}
	case LayoutPair:
		return [][]int{{0, 1}}
	case LayoutWidePair:
		return [][]int{{0}, {1, 2}}
	case LayoutTwoPairs:
		return [][]int{{0, 1}, {2, 3}}
	default:
		return nil
	}
}
