package design

// defaultProperties returns the shorthand table shared by the built-in themes.
func defaultProperties() map[string][]string {
	return map[string][]string{
		"d":  {"display"},
		"w":  {"width"},
		"h":  {"height"},
		"c":  {"color"},
		"bg": {"backgroundColor"},
		"ma": {"marginTop", "marginBottom", "marginLeft", "marginRight"},
		"mt": {"marginTop"},
		"mb": {"marginBottom"},
		"ml": {"marginLeft"},
		"mr": {"marginRight"},
		"my": {"marginTop", "marginBottom"},
		"mx": {"marginLeft", "marginRight"},
		// pa maps to every padding side.
		"pa":     {"paddingTop", "paddingBottom", "paddingLeft", "paddingRight"},
		"pt":     {"paddingTop"},
		"pb":     {"paddingBottom"},
		"pl":     {"paddingLeft"},
		"pr":     {"paddingRight"},
		"py":     {"paddingTop", "paddingBottom"},
		"px":     {"paddingLeft", "paddingRight"},
		"z":      {"zIndex"},
		"fs":     {"fontSize"},
		"ff":     {"fontFamily"},
		"fw":     {"fontWeight"},
		"lh":     {"lineHeight"},
		"ta":     {"textAlign"},
		"radius": {"borderRadius"},
	}
}

func cloneProperties(props map[string][]string) map[string][]string {
	if props == nil {
		return nil
	}
	out := make(map[string][]string, len(props))
	for alias, names := range props {
		out[alias] = append([]string(nil), names...)
	}
	return out
}

func defaultBreakpoints() map[string]float64 {
	return map[string]float64{
		"gtPhone": 640,
	}
}

func cloneBreakpoints(bps map[string]float64) map[string]float64 {
	if bps == nil {
		return nil
	}
	out := make(map[string]float64, len(bps))
	for name, width := range bps {
		out[name] = width
	}
	return out
}
