package design

import "sort"

// Macro names a style fragment generator. The set is closed.
type Macro string

const (
	MacroInline Macro = "inline"
	MacroAIC    Macro = "aic"
	MacroAIE    Macro = "aie"
	MacroJCS    Macro = "jcs"
	MacroJCC    Macro = "jcc"
	MacroJCE    Macro = "jce"
	MacroJCB    Macro = "jcb"
	MacroRel    Macro = "rel"
	MacroAbs    Macro = "abs"
	MacroCover  Macro = "cover"
	MacroTAC    Macro = "tac"
	MacroTAR    Macro = "tar"
	MacroMXA    Macro = "mxa"
	MacroMYA    Macro = "mya"
	MacroCaps   Macro = "caps"
	MacroFont   Macro = "font"
)

// Font is the trigger domain of MacroFont.
type Font string

const (
	FontSans Font = "sans"
	FontMono Font = "mono"
)

type macroFunc func(trigger any, tokens Tokens) (Style, error)

var macroTable = map[Macro]macroFunc{
	MacroInline: boolMacro(MacroInline, Style{"flexDirection": "row"}),
	MacroAIC:    boolMacro(MacroAIC, Style{"alignItems": "center"}),
	MacroAIE:    boolMacro(MacroAIE, Style{"alignItems": "flex-end"}),
	MacroJCS:    boolMacro(MacroJCS, Style{"justifyContent": "flex-start"}),
	MacroJCC:    boolMacro(MacroJCC, Style{"justifyContent": "center"}),
	MacroJCE:    boolMacro(MacroJCE, Style{"justifyContent": "flex-end"}),
	MacroJCB:    boolMacro(MacroJCB, Style{"justifyContent": "space-between"}),
	MacroRel:    boolMacro(MacroRel, Style{"position": "relative"}),
	MacroAbs:    boolMacro(MacroAbs, Style{"position": "absolute"}),
	MacroCover:  boolMacro(MacroCover, Style{"top": 0, "bottom": 0, "left": 0, "right": 0}),
	MacroTAC:    boolMacro(MacroTAC, Style{"textAlign": "center"}),
	MacroTAR:    boolMacro(MacroTAR, Style{"textAlign": "right"}),
	MacroMXA:    boolMacro(MacroMXA, Style{"marginLeft": "auto", "marginRight": "auto"}),
	MacroMYA:    boolMacro(MacroMYA, Style{"marginTop": "auto", "marginBottom": "auto"}),
	MacroCaps:   boolMacro(MacroCaps, Style{"textTransform": "uppercase"}),
	MacroFont:   fontMacro,
}

// KnownMacros lists every macro name in sorted order.
func KnownMacros() []Macro {
	out := make([]Macro, 0, len(macroTable))
	for name := range macroTable {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsMacro reports whether name belongs to the macro set.
func IsMacro(name string) bool {
	_, ok := macroTable[Macro(name)]
	return ok
}

// A false trigger contributes nothing.
func boolMacro(name Macro, fragment Style) macroFunc {
	return func(trigger any, _ Tokens) (Style, error) {
		on, ok := trigger.(bool)
		if !ok {
			return nil, &InvalidTriggerError{Macro: name, Trigger: trigger, Expected: "true or false"}
		}
		if !on {
			return nil, nil
		}
		return fragment.Clone(), nil
	}
}

func fontMacro(trigger any, tokens Tokens) (Style, error) {
	var font Font
	switch v := trigger.(type) {
	case Font:
		font = v
	case string:
		font = Font(v)
	}

	var key string
	switch font {
	case FontSans:
		key = "inter"
	case FontMono:
		key = "roboto"
	default:
		return nil, &InvalidTriggerError{Macro: MacroFont, Trigger: trigger, Expected: "sans or mono"}
	}

	family, err := tokens.Lookup(CategoryFontFamily, key)
	if err != nil {
		return nil, err
	}
	return Style{"fontFamily": family}, nil
}
