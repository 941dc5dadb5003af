package tw

// BreakpointConfig holds the pixel thresholds for responsive breakpoints.
// Tailwind uses mobile-first design: styles apply at the breakpoint width and above.
type BreakpointConfig struct {
	SM  float32 `toml:"sm"`  // ≥640px by default
	MD  float32 `toml:"md"`  // ≥768px by default
	LG  float32 `toml:"lg"`  // ≥1024px by default
	XL  float32 `toml:"xl"`  // ≥1280px by default
	XXL float32 `toml:"2xl"` // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind CSS v4 breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint returns which breakpoint is currently active for a given width.
// Returns the highest breakpoint that the width satisfies.
func (c BreakpointConfig) ActiveBreakpoint(width float32) Breakpoint {
	if width >= c.XXL {
		return Breakpoint2XL
	}
	if width >= c.XL {
		return BreakpointXL
	}
	if width >= c.LG {
		return BreakpointLG
	}
	if width >= c.MD {
		return BreakpointMD
	}
	if width >= c.SM {
		return BreakpointSM
	}
	return BreakpointBase
}

// ResolveForWidth merges properties from base up through the active breakpoint.
// This implements Tailwind's mobile-first cascade: base → sm → md → lg → xl → 2xl
// Only properties that are explicitly set at each level override previous values.
func (cs *ComputedStyles) ResolveForWidth(width float32, config BreakpointConfig) FlexProperties {
	result := cs.Base

	if width >= config.SM {
		result.Merge(cs.SM)
	}
	if width >= config.MD {
		result.Merge(cs.MD)
	}
	if width >= config.LG {
		result.Merge(cs.LG)
	}
	if width >= config.XL {
		result.Merge(cs.XL)
	}
	if width >= config.XXL {
		result.Merge(cs.XXL)
	}

	return result
}

// Responsive reports whether any breakpoint variant is set, i.e. whether the
// resolved properties can change with the viewport width.
func (cs *ComputedStyles) Responsive() bool {
	return !cs.SM.IsZero() || !cs.MD.IsZero() || !cs.LG.IsZero() ||
		!cs.XL.IsZero() || !cs.XXL.IsZero()
}

// target returns the bucket a class with breakpoint b is written to.
func (cs *ComputedStyles) target(b Breakpoint) *FlexProperties {
	switch b {
	case BreakpointSM:
		return &cs.SM
	case BreakpointMD:
		return &cs.MD
	case BreakpointLG:
		return &cs.LG
	case BreakpointXL:
		return &cs.XL
	case Breakpoint2XL:
		return &cs.XXL
	}
	return &cs.Base
}
