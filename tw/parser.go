package tw

import (
	"strconv"
	"strings"
)

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Breakpoint     Breakpoint
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[120px]

	// Set when a variant prefix is not a known breakpoint
	UnknownVariant bool
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "gap-x", "basis", "grow"
	Value    string // e.g., "120px", "1.5rem", "3"
}

// ParseClasses parses a Tailwind class string and returns computed flex
// properties per breakpoint.
// Example: "flex flex-col md:flex-row gap-4 justify-between w-[320px]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.UnknownVariant {
			computed.Unknown = append(computed.Unknown, class)
			continue
		}

		var (
			props FlexProperties
			ok    bool
		)
		if parsed.ArbitraryValue != nil {
			props, ok = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			props, ok = lookupClass(parsed.BaseClass)
		}
		if !ok {
			// Unknown classes never fail a parse, like Tailwind CSS
			computed.Unknown = append(computed.Unknown, class)
			continue
		}

		computed.target(parsed.Breakpoint).Merge(props)
	}

	return computed
}

// parseClass splits a class into variant modifiers and base utility
// "md:flex-row" → ParsedClass{Breakpoint: MD, BaseClass: "flex-row"}
// "w-[120px]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "120px"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1], // Last part is always the base utility
	}

	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			// hover:, dark: and friends have no meaning for layout
			pc.UnknownVariant = true
		}
	}

	// Check if base class is an arbitrary value: property-[value]
	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = "" // Clear base class since we're using arbitrary
	}

	return pc
}

// extractArbitraryValue parses arbitrary value syntax
// "w-[120px]" → ArbitraryValue{Property: "w", Value: "120px"}
// "grow-[3]" → ArbitraryValue{Property: "grow", Value: "3"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	property := strings.TrimSuffix(class[:bracketIdx], "-") // Remove trailing dash
	value := strings.TrimSuffix(class[bracketIdx+1:], "]")

	return &ArbitraryValue{
		Property: property,
		Value:    value,
	}
}

// keywordClasses maps the fixed-name utilities.
var keywordClasses = map[string]FlexProperties{
	// display: every container is a flex container already
	"flex": {},

	"flex-row":          {Direction: strPtr("row")},
	"flex-col":          {Direction: strPtr("column")},
	"flex-row-reverse":  {Direction: strPtr("row-reverse")},
	"flex-col-reverse":  {Direction: strPtr("column-reverse")},
	"flex-wrap":         {Wrap: strPtr("wrap")},
	"flex-nowrap":       {Wrap: strPtr("nowrap")},
	"flex-wrap-reverse": {Wrap: strPtr("wrap-reverse")},
	"justify-start":     {Justify: strPtr("start")},
	"justify-end":       {Justify: strPtr("end")},
	"justify-center":    {Justify: strPtr("center")},
	"justify-between":   {Justify: strPtr("between")},
	"justify-evenly":    {Justify: strPtr("evenly")},
	"justify-around":    {Justify: strPtr("around")},
	"items-start":       {AlignItems: strPtr("start")},
	"items-end":         {AlignItems: strPtr("end")},
	"items-center":      {AlignItems: strPtr("center")},
	"items-stretch":     {AlignItems: strPtr("stretch")},
	"content-start":     {AlignContent: strPtr("start")},
	"content-end":       {AlignContent: strPtr("end")},
	"content-center":    {AlignContent: strPtr("center")},
	"content-between":   {AlignContent: strPtr("between")},
	"content-evenly":    {AlignContent: strPtr("evenly")},
	"content-stretch":   {AlignContent: strPtr("stretch")},
	"self-auto":         {AlignSelf: strPtr("auto")},
	"self-start":        {AlignSelf: strPtr("start")},
	"self-end":          {AlignSelf: strPtr("end")},
	"self-center":       {AlignSelf: strPtr("center")},
	"self-stretch":      {AlignSelf: strPtr("stretch")},
	"break-after":       {BreakAfter: boolPtr(true)},
	"break-after-auto":  {BreakAfter: boolPtr(false)},
	"grow":              {Grow: intPtr(1)},
	"shrink":            {Shrink: intPtr(1)},
	"basis-auto":        {BasisAuto: boolPtr(true)},
	"flex-1":            {Grow: intPtr(1), Shrink: intPtr(1), Basis: float32Ptr(0)},
	"flex-auto":         {Grow: intPtr(1), Shrink: intPtr(1), BasisAuto: boolPtr(true)},
	"flex-initial":      {Grow: intPtr(0), Shrink: intPtr(1), BasisAuto: boolPtr(true)},
	"flex-none":         {Grow: intPtr(0), Shrink: intPtr(0), BasisAuto: boolPtr(true)},
}

// lookupClass resolves a keyword utility or a spacing-scale utility such as
// gap-4, w-64 or grow-2.
func lookupClass(base string) (FlexProperties, bool) {
	if props, ok := keywordClasses[base]; ok {
		return props, true
	}

	var props FlexProperties
	switch {
	case strings.HasPrefix(base, "gap-x-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "gap-x-"))
		if !ok {
			return props, false
		}
		props.GapX = &v
	case strings.HasPrefix(base, "gap-y-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "gap-y-"))
		if !ok {
			return props, false
		}
		props.GapY = &v
	case strings.HasPrefix(base, "gap-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "gap-"))
		if !ok {
			return props, false
		}
		props.GapX, props.GapY = &v, float32Ptr(v)
	case strings.HasPrefix(base, "w-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "w-"))
		if !ok {
			return props, false
		}
		props.Width = &v
	case strings.HasPrefix(base, "h-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "h-"))
		if !ok {
			return props, false
		}
		props.Height = &v
	case strings.HasPrefix(base, "basis-"):
		v, ok := parseSpacing(strings.TrimPrefix(base, "basis-"))
		if !ok {
			return props, false
		}
		props.Basis = &v
	case strings.HasPrefix(base, "grow-"):
		n, ok := parseWeight(strings.TrimPrefix(base, "grow-"))
		if !ok {
			return props, false
		}
		props.Grow = &n
	case strings.HasPrefix(base, "shrink-"):
		n, ok := parseWeight(strings.TrimPrefix(base, "shrink-"))
		if !ok {
			return props, false
		}
		props.Shrink = &n
	default:
		return props, false
	}
	return props, true
}

// parseArbitraryValue converts arbitrary value to FlexProperties at runtime
func parseArbitraryValue(arb *ArbitraryValue) (FlexProperties, bool) {
	var props FlexProperties

	switch arb.Property {
	case "grow", "shrink":
		n, ok := parseWeight(arb.Value)
		if !ok {
			return props, false
		}
		if arb.Property == "grow" {
			props.Grow = &n
		} else {
			props.Shrink = &n
		}
		return props, true
	}

	val := parseDimension(arb.Value)
	if val == nil {
		return props, false
	}
	switch arb.Property {
	case "w":
		props.Width = val
	case "h":
		props.Height = val
	case "basis":
		props.Basis = val
	case "gap":
		props.GapX, props.GapY = val, float32Ptr(*val)
	case "gap-x":
		props.GapX = val
	case "gap-y":
		props.GapY = val
	default:
		return props, false
	}
	return props, true
}

// parseSpacing converts a spacing-scale step ("4", "0.5", "px") to pixels.
func parseSpacing(value string) (float32, bool) {
	if value == "px" {
		return 1, true
	}
	f, err := strconv.ParseFloat(value, 32)
	if err != nil || f < 0 {
		return 0, false
	}
	return float32(f) * GetSpacing(), true
}

// parseWeight parses a non-negative grow or shrink factor.
func parseWeight(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseDimension parses CSS dimension values (px, rem, em or a plain number).
// Percentages are not supported by the solver and yield nil.
func parseDimension(value string) *float32 {
	value = strings.TrimSpace(value)

	numStr := value
	var multiplier float32 = 1.0

	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0 // 1rem = 16px
	case strings.HasSuffix(value, "em"):
		numStr = strings.TrimSuffix(value, "em")
		multiplier = 16.0 // Approximate
	}

	f, err := strconv.ParseFloat(numStr, 32)
	if err != nil || f < 0 {
		return nil
	}
	result := float32(f) * multiplier
	return &result
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }
func boolPtr(b bool) *bool { return &b }
func float32Ptr(f float32) *float32 { return &f }
