package twmerge

import "regexp"

// pattern classifies parametric utilities. When group is empty the first
// capture is a prefix key resolved through exactGroups.
type pattern struct {
	name  string
	re    *regexp.Regexp
	group Group
}

// patterns are tried in order after the exact table misses.
var patterns = []pattern{
	{name: "spacing", re: regexp.MustCompile(`^(p|px|py|pt|pr|pb|pl|m|mx|my|mt|mr|mb|ml)-(\d+\.?\d*|auto)$`)},
	{name: "sizing", re: regexp.MustCompile(`^(w|h|min-w|min-h|max-w|max-h)-(.+)$`)},
	{name: "gap", re: regexp.MustCompile(`^(gap|gap-x|gap-y)-(\d+\.?\d*)$`)},
	{name: "text-color", re: regexp.MustCompile(`^text-([a-z]+)(?:-(\d+))?$`), group: GroupTextColor},
	{name: "background-color", re: regexp.MustCompile(`^bg-([a-z]+)(?:-(\d+))?$`), group: GroupBackgroundColor},
	{name: "border-color", re: regexp.MustCompile(`^border-([a-z]+)(?:-(\d+))?$`), group: GroupBorderColor},
	{name: "border-width", re: regexp.MustCompile(`^border(-\d+)?$`), group: GroupBorderWidth},
	{name: "opacity", re: regexp.MustCompile(`^opacity-(\d+)$`), group: GroupOpacity},
	{name: "z-index", re: regexp.MustCompile(`^z-(\d+|auto)$`), group: GroupZIndex},
	{name: "grid-cols", re: regexp.MustCompile(`^grid-cols-(\d+|none)$`), group: GroupGridCols},
	{name: "grid-rows", re: regexp.MustCompile(`^grid-rows-(\d+|none)$`), group: GroupGridRows},
}

// classify resolves the group of a validated token without consulting the
// memo cache.
func classify(token string) (Group, bool) {
	if g, ok := exactGroups[token]; ok {
		return g, true
	}

	for _, p := range patterns {
		matches := p.re.FindStringSubmatch(token)
		if matches == nil {
			continue
		}
		if p.group != "" {
			return p.group, true
		}
		if g, ok := exactGroups[matches[1]]; ok {
			return g, true
		}
	}

	return "", false
}
