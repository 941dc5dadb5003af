package tw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseClassesContainer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "direction and wrap",
			input: "flex flex-col-reverse flex-wrap-reverse",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Direction == nil || *s.Base.Direction != "column-reverse" {
					t.Errorf("expected Direction=column-reverse, got %v", s.Base.Direction)
				}
				if s.Base.Wrap == nil || *s.Base.Wrap != "wrap-reverse" {
					t.Errorf("expected Wrap=wrap-reverse, got %v", s.Base.Wrap)
				}
			},
		},
		{
			name:  "alignment utilities",
			input: "justify-between items-center content-evenly",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Justify == nil || *s.Base.Justify != "between" {
					t.Errorf("expected Justify=between, got %v", s.Base.Justify)
				}
				if s.Base.AlignItems == nil || *s.Base.AlignItems != "center" {
					t.Errorf("expected AlignItems=center, got %v", s.Base.AlignItems)
				}
				if s.Base.AlignContent == nil || *s.Base.AlignContent != "evenly" {
					t.Errorf("expected AlignContent=evenly, got %v", s.Base.AlignContent)
				}
			},
		},
		{
			name:  "gap sets both axes",
			input: "gap-4",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.GapX == nil || *s.Base.GapX != 16 {
					t.Errorf("expected GapX=16, got %v", s.Base.GapX)
				}
				if s.Base.GapY == nil || *s.Base.GapY != 16 {
					t.Errorf("expected GapY=16, got %v", s.Base.GapY)
				}
			},
		},
		{
			name:  "axis gap overrides shorthand",
			input: "gap-2 gap-y-0.5",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.GapX == nil || *s.Base.GapX != 8 {
					t.Errorf("expected GapX=8, got %v", s.Base.GapX)
				}
				if s.Base.GapY == nil || *s.Base.GapY != 2 {
					t.Errorf("expected GapY=2, got %v", s.Base.GapY)
				}
			},
		},
		{
			name:  "sizes on the spacing scale",
			input: "w-64 h-px",
			validate: func(t *testing.T, s ComputedStyles) {
				if s.Base.Width == nil || *s.Base.Width != 256 {
					t.Errorf("expected Width=256, got %v", s.Base.Width)
				}
				if s.Base.Height == nil || *s.Base.Height != 1 {
					t.Errorf("expected Height=1, got %v", s.Base.Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseClasses(tt.input)
			if len(result.Unknown) != 0 {
				t.Errorf("unexpected unknown classes: %v", result.Unknown)
			}
			tt.validate(t, result)
		})
	}
}

func TestParseClassesItem(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantGrow   *int
		wantShrink *int
		wantBasis  *float32
		wantAuto   bool
	}{
		{name: "grow", input: "grow", wantGrow: intPtr(1)},
		{name: "grow weight", input: "grow-3 shrink-0", wantGrow: intPtr(3), wantShrink: intPtr(0)},
		{name: "basis", input: "grow basis-20", wantGrow: intPtr(1), wantBasis: float32Ptr(80)},
		{name: "flex-1", input: "flex-1", wantGrow: intPtr(1), wantShrink: intPtr(1), wantBasis: float32Ptr(0)},
		{name: "flex-none", input: "flex-none", wantGrow: intPtr(0), wantShrink: intPtr(0), wantAuto: true},
		{name: "basis-auto clears basis", input: "basis-8 basis-auto", wantAuto: true},
		{name: "basis clears basis-auto", input: "flex-auto basis-2", wantGrow: intPtr(1), wantShrink: intPtr(1), wantBasis: float32Ptr(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseClasses(tt.input).Base
			if diff := cmp.Diff(tt.wantGrow, p.Grow); diff != "" {
				t.Errorf("Grow mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantShrink, p.Shrink); diff != "" {
				t.Errorf("Shrink mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantBasis, p.Basis); diff != "" {
				t.Errorf("Basis mismatch (-want +got):\n%s", diff)
			}
			if got := p.BasisAuto != nil && *p.BasisAuto; got != tt.wantAuto {
				t.Errorf("BasisAuto = %v, want %v", got, tt.wantAuto)
			}
		})
	}
}

func TestParseClassesSelfAndBreak(t *testing.T) {
	p := ParseClasses("self-end break-after").Base
	if p.AlignSelf == nil || *p.AlignSelf != "end" {
		t.Errorf("expected AlignSelf=end, got %v", p.AlignSelf)
	}
	if p.BreakAfter == nil || !*p.BreakAfter {
		t.Errorf("expected BreakAfter=true, got %v", p.BreakAfter)
	}

	p = ParseClasses("break-after break-after-auto").Base
	if p.BreakAfter == nil || *p.BreakAfter {
		t.Errorf("last class should win, got BreakAfter=%v", p.BreakAfter)
	}
}

func TestParseClassesLastWins(t *testing.T) {
	p := ParseClasses("flex-row flex-col justify-end justify-center").Base
	if *p.Direction != "column" {
		t.Errorf("expected Direction=column, got %s", *p.Direction)
	}
	if *p.Justify != "center" {
		t.Errorf("expected Justify=center, got %s", *p.Justify)
	}
}

func TestParseClassesUnknown(t *testing.T) {
	result := ParseClasses("flex bg-blue-500 hover:flex-row grow-x w-1/2 gap-[10%] flex-col")

	want := []string{"bg-blue-500", "hover:flex-row", "grow-x", "w-1/2", "gap-[10%]"}
	if diff := cmp.Diff(want, result.Unknown); diff != "" {
		t.Errorf("Unknown mismatch (-want +got):\n%s", diff)
	}
	if result.Base.Direction == nil || *result.Base.Direction != "column" {
		t.Errorf("known classes should still apply, got Direction=%v", result.Base.Direction)
	}
	if result.Base.GapX != nil {
		t.Errorf("rejected arbitrary gap leaked into GapX=%v", *result.Base.GapX)
	}
}

func TestParseClassVariants(t *testing.T) {
	tests := []struct {
		input string
		want  ParsedClass
	}{
		{"flex-row", ParsedClass{Breakpoint: BreakpointBase, BaseClass: "flex-row"}},
		{"md:flex-row", ParsedClass{Breakpoint: BreakpointMD, BaseClass: "flex-row"}},
		{"2xl:gap-8", ParsedClass{Breakpoint: Breakpoint2XL, BaseClass: "gap-8"}},
		{"dark:flex-row", ParsedClass{BaseClass: "flex-row", UnknownVariant: true}},
		{
			"lg:w-[120px]",
			ParsedClass{
				Breakpoint:     BreakpointLG,
				ArbitraryValue: &ArbitraryValue{Property: "w", Value: "120px"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseClass(tt.input)); diff != "" {
				t.Errorf("parseClass(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestCustomSpacing(t *testing.T) {
	SetConfig(ThemeConfig{Spacing: 8, Breakpoints: DefaultBreakpoints()})
	defer ResetConfig()

	p := ParseClasses("gap-2 w-10").Base
	if *p.GapX != 16 || *p.Width != 80 {
		t.Errorf("spacing step 8: got gap %v width %v, want 16 and 80", *p.GapX, *p.Width)
	}
}
