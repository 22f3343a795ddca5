package theme

// Merge lays o over base and returns the result; base is not modified.
//
// Leaves set in o win. Extra maps merge key by key. Extension values merge
// recursively when both sides are maps; any other pairing, slices included,
// is replaced wholesale by the override value.
func Merge(base Theme, o Override) Theme {
	out := base.Clone()

	for _, key := range colorKeys {
		if v := *o.Colors.slot(key); v != nil {
			*out.Colors.slot(key) = *v
		}
	}
	out.Colors.Extra = mergeStringMap(out.Colors.Extra, o.Colors.Extra)

	for _, key := range typographyKeys {
		if v := *o.Typography.slot(key); v != nil {
			*out.Typography.slot(key) = *v
		}
	}
	out.Typography.Extra = mergeFloatMap(out.Typography.Extra, o.Typography.Extra)

	for _, key := range spacingKeys {
		if v := *o.Spacing.slot(key); v != nil {
			*out.Spacing.slot(key) = *v
		}
	}
	out.Spacing.Extra = mergeFloatMap(out.Spacing.Extra, o.Spacing.Extra)

	out.Extensions = mergeMaps(out.Extensions, o.Extensions)
	return out
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func mergeFloatMap(dst, src map[string]float64) map[string]float64 {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]float64, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// mergeMaps writes src into dst (already a private copy) and returns it.
func mergeMaps(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = mergeValue(dst[k], v)
	}
	return dst
}

func mergeValue(base, override any) any {
	baseMap, baseIsMap := base.(map[string]any)
	overrideMap, overrideIsMap := override.(map[string]any)
	if baseIsMap && overrideIsMap {
		return mergeMaps(baseMap, cloneValue(overrideMap).(map[string]any))
	}
	return cloneValue(override)
}
