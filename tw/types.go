package tw

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640px
	BreakpointMD              // ≥768px
	BreakpointLG              // ≥1024px
	BreakpointXL              // ≥1280px
	Breakpoint2XL             // ≥1536px
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointSM:
		return "sm"
	case BreakpointMD:
		return "md"
	case BreakpointLG:
		return "lg"
	case BreakpointXL:
		return "xl"
	case Breakpoint2XL:
		return "2xl"
	}
	return "base"
}

// FlexProperties holds the flex values set by a group of utility classes.
// A nil field was not set by any class and leaves the target untouched.
type FlexProperties struct {
	// Container
	Direction    *string // "row", "column", "row-reverse", "column-reverse"
	Wrap         *string // "nowrap", "wrap", "wrap-reverse"
	Justify      *string // "start", "end", "center", "between", "evenly", "around"
	AlignItems   *string // "start", "end", "center", "stretch"
	AlignContent *string // "start", "end", "center", "between", "evenly", "stretch"
	GapX         *float32
	GapY         *float32

	// Sizing (pixels)
	Width  *float32
	Height *float32

	// Item
	Grow       *int
	Shrink     *int
	Basis      *float32
	BasisAuto  *bool // basis-auto: start from the intrinsic size
	AlignSelf  *string
	BreakAfter *bool
}

// IsZero reports whether no property is set.
func (p FlexProperties) IsZero() bool {
	return p == FlexProperties{}
}

// Merge copies the set fields of o over p. Later values override earlier
// ones (last class wins).
func (p *FlexProperties) Merge(o FlexProperties) {
	if o.Direction != nil {
		p.Direction = o.Direction
	}
	if o.Wrap != nil {
		p.Wrap = o.Wrap
	}
	if o.Justify != nil {
		p.Justify = o.Justify
	}
	if o.AlignItems != nil {
		p.AlignItems = o.AlignItems
	}
	if o.AlignContent != nil {
		p.AlignContent = o.AlignContent
	}
	if o.GapX != nil {
		p.GapX = o.GapX
	}
	if o.GapY != nil {
		p.GapY = o.GapY
	}
	if o.Width != nil {
		p.Width = o.Width
	}
	if o.Height != nil {
		p.Height = o.Height
	}
	if o.Grow != nil {
		p.Grow = o.Grow
	}
	if o.Shrink != nil {
		p.Shrink = o.Shrink
	}
	if o.Basis != nil {
		p.Basis = o.Basis
		p.BasisAuto = nil
	}
	if o.BasisAuto != nil {
		p.BasisAuto = o.BasisAuto
		p.Basis = nil
	}
	if o.AlignSelf != nil {
		p.AlignSelf = o.AlignSelf
	}
	if o.BreakAfter != nil {
		p.BreakAfter = o.BreakAfter
	}
}

// ComputedStyles represents flex properties organized by breakpoint
type ComputedStyles struct {
	// Base styles (always apply)
	Base FlexProperties

	// Responsive variants (apply at different breakpoints)
	SM  FlexProperties
	MD  FlexProperties
	LG  FlexProperties
	XL  FlexProperties
	XXL FlexProperties

	// Classes that matched no utility, in input order
	Unknown []string
}

// ThemeConfig holds the consumer's theme configuration.
// This is registered via SetConfig() at app startup.
type ThemeConfig struct {
	// Spacing is the pixel size of one spacing step: gap-4 is 4*Spacing.
	Spacing     float32
	Breakpoints BreakpointConfig
}

// DefaultTheme returns the Tailwind defaults: a 4px spacing step and the
// standard breakpoints.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Spacing:     4,
		Breakpoints: DefaultBreakpoints(),
	}
}

// registeredConfig holds the consumer's theme configuration.
// If nil, falls back to DefaultTheme.
var registeredConfig *ThemeConfig

// SetConfig registers the consumer's theme configuration.
// This should be called at app startup before any parsing occurs.
func SetConfig(config ThemeConfig) {
	if config.Spacing <= 0 {
		config.Spacing = DefaultTheme().Spacing
	}
	registeredConfig = &config
}

// ResetConfig restores the framework defaults.
func ResetConfig() {
	registeredConfig = nil
}

// GetSpacing returns the registered spacing step or the framework default.
func GetSpacing() float32 {
	if registeredConfig != nil {
		return registeredConfig.Spacing
	}
	return DefaultTheme().Spacing
}

// GetBreakpoints returns the registered breakpoints or falls back to the framework default.
func GetBreakpoints() BreakpointConfig {
	if registeredConfig != nil {
		return registeredConfig.Breakpoints
	}
	return DefaultBreakpoints()
}
