package twmerge

// Group names the CSS property bucket a utility class belongs to. Two tokens
// in the same group conflict and only the later one survives a merge.
type Group string

const (
	GroupDisplay         Group = "display"
	GroupPosition        Group = "position"
	GroupFontWeight      Group = "font-weight"
	GroupFontSize        Group = "font-size"
	GroupJustifyContent  Group = "justify-content"
	GroupAlignItems      Group = "align-items"
	GroupFlexDirection   Group = "flex-direction"
	GroupBorderRadius    Group = "border-radius"
	GroupTextColor       Group = "text-color"
	GroupBackgroundColor Group = "background-color"
	GroupBorderColor     Group = "border-color"
	GroupBorderWidth     Group = "border-width"
	GroupOpacity         Group = "opacity"
	GroupZIndex          Group = "z-index"
	GroupGridCols        Group = "grid-cols"
	GroupGridRows        Group = "grid-rows"

	GroupPadding       Group = "padding"
	GroupPaddingX      Group = "padding-x"
	GroupPaddingY      Group = "padding-y"
	GroupPaddingTop    Group = "padding-top"
	GroupPaddingRight  Group = "padding-right"
	GroupPaddingBottom Group = "padding-bottom"
	GroupPaddingLeft   Group = "padding-left"
	GroupMargin        Group = "margin"
	GroupMarginX       Group = "margin-x"
	GroupMarginY       Group = "margin-y"
	GroupMarginTop     Group = "margin-top"
	GroupMarginRight   Group = "margin-right"
	GroupMarginBottom  Group = "margin-bottom"
	GroupMarginLeft    Group = "margin-left"

	GroupWidth     Group = "width"
	GroupMinWidth  Group = "min-width"
	GroupMaxWidth  Group = "max-width"
	GroupHeight    Group = "height"
	GroupMinHeight Group = "min-height"
	GroupMaxHeight Group = "max-height"

	GroupGap  Group = "gap"
	GroupGapX Group = "gap-x"
	GroupGapY Group = "gap-y"
)

// exactGroups maps whole class names to their group. It is consulted before
// any pattern. The bare prefix keys at the end name the group of a prefix
// captured by the spacing, sizing and gap patterns.
var exactGroups = map[string]Group{
	// Display
	"block":        GroupDisplay,
	"inline-block": GroupDisplay,
	"inline":       GroupDisplay,
	"flex":         GroupDisplay,
	"inline-flex":  GroupDisplay,
	"grid":         GroupDisplay,
	"inline-grid":  GroupDisplay,
	"hidden":       GroupDisplay,
	"table":        GroupDisplay,
	"contents":     GroupDisplay,
	"flow-root":    GroupDisplay,
	"list-item":    GroupDisplay,

	// Position
	"static":   GroupPosition,
	"fixed":    GroupPosition,
	"absolute": GroupPosition,
	"relative": GroupPosition,
	"sticky":   GroupPosition,

	// Font weight
	"font-thin":       GroupFontWeight,
	"font-extralight": GroupFontWeight,
	"font-light":      GroupFontWeight,
	"font-normal":     GroupFontWeight,
	"font-medium":     GroupFontWeight,
	"font-semibold":   GroupFontWeight,
	"font-bold":       GroupFontWeight,
	"font-extrabold":  GroupFontWeight,
	"font-black":      GroupFontWeight,

	// Font size
	"text-xs":   GroupFontSize,
	"text-sm":   GroupFontSize,
	"text-base": GroupFontSize,
	"text-lg":   GroupFontSize,
	"text-xl":   GroupFontSize,
	"text-2xl":  GroupFontSize,
	"text-3xl":  GroupFontSize,
	"text-4xl":  GroupFontSize,
	"text-5xl":  GroupFontSize,
	"text-6xl":  GroupFontSize,
	"text-7xl":  GroupFontSize,
	"text-8xl":  GroupFontSize,
	"text-9xl":  GroupFontSize,

	// Justify content
	"justify-normal":  GroupJustifyContent,
	"justify-start":   GroupJustifyContent,
	"justify-end":     GroupJustifyContent,
	"justify-center":  GroupJustifyContent,
	"justify-between": GroupJustifyContent,
	"justify-around":  GroupJustifyContent,
	"justify-evenly":  GroupJustifyContent,
	"justify-stretch": GroupJustifyContent,

	// Align items
	"items-start":    GroupAlignItems,
	"items-end":      GroupAlignItems,
	"items-center":   GroupAlignItems,
	"items-baseline": GroupAlignItems,
	"items-stretch":  GroupAlignItems,

	// Flex direction
	"flex-row":         GroupFlexDirection,
	"flex-row-reverse": GroupFlexDirection,
	"flex-col":         GroupFlexDirection,
	"flex-col-reverse": GroupFlexDirection,

	// Border radius
	"rounded":      GroupBorderRadius,
	"rounded-none": GroupBorderRadius,
	"rounded-sm":   GroupBorderRadius,
	"rounded-md":   GroupBorderRadius,
	"rounded-lg":   GroupBorderRadius,
	"rounded-xl":   GroupBorderRadius,
	"rounded-2xl":  GroupBorderRadius,
	"rounded-3xl":  GroupBorderRadius,
	"rounded-full": GroupBorderRadius,

	// Prefix keys
	"p":     GroupPadding,
	"px":    GroupPaddingX,
	"py":    GroupPaddingY,
	"pt":    GroupPaddingTop,
	"pr":    GroupPaddingRight,
	"pb":    GroupPaddingBottom,
	"pl":    GroupPaddingLeft,
	"m":     GroupMargin,
	"mx":    GroupMarginX,
	"my":    GroupMarginY,
	"mt":    GroupMarginTop,
	"mr":    GroupMarginRight,
	"mb":    GroupMarginBottom,
	"ml":    GroupMarginLeft,
	"w":     GroupWidth,
	"min-w": GroupMinWidth,
	"max-w": GroupMaxWidth,
	"h":     GroupHeight,
	"min-h": GroupMinHeight,
	"max-h": GroupMaxHeight,
	"gap":   GroupGap,
	"gap-x": GroupGapX,
	"gap-y": GroupGapY,
	"z":     GroupZIndex,
}

// side is a bit set of the box sides (or gap axes) a group writes to.
type side uint8

const (
	sideTop side = 1 << iota
	sideRight
	sideBottom
	sideLeft

	sideAll = sideTop | sideRight | sideBottom | sideLeft
	sideX   = sideRight | sideLeft
	sideY   = sideTop | sideBottom
)

// groupSides lists the groups that overlap other groups of the same family.
// A later token rewrites its sides on earlier survivors of the family; a
// survivor is dropped once every one of its sides has been rewritten.
var groupSides = map[Group]struct {
	family string
	sides  side
}{
	GroupPadding:       {"padding", sideAll},
	GroupPaddingX:      {"padding", sideX},
	GroupPaddingY:      {"padding", sideY},
	GroupPaddingTop:    {"padding", sideTop},
	GroupPaddingRight:  {"padding", sideRight},
	GroupPaddingBottom: {"padding", sideBottom},
	GroupPaddingLeft:   {"padding", sideLeft},

	GroupMargin:       {"margin", sideAll},
	GroupMarginX:      {"margin", sideX},
	GroupMarginY:      {"margin", sideY},
	GroupMarginTop:    {"margin", sideTop},
	GroupMarginRight:  {"margin", sideRight},
	GroupMarginBottom: {"margin", sideBottom},
	GroupMarginLeft:   {"margin", sideLeft},

	// Gap axes reuse the horizontal and vertical bits.
	GroupGap:  {"gap", sideX | sideY},
	GroupGapX: {"gap", sideX},
	GroupGapY: {"gap", sideY},
}

// overlaps is built once from groupSides. Every grouped token overlaps its
// own group, which is handled by the resolver directly.
var overlaps = buildOverlaps()

func buildOverlaps() map[Group][]Group {
	out := make(map[Group][]Group, len(groupSides))
	for g, gs := range groupSides {
		for h, hs := range groupSides {
			if g == h || gs.family != hs.family {
				continue
			}
			if gs.sides&hs.sides != 0 {
				out[g] = append(out[g], h)
			}
		}
	}
	return out
}
