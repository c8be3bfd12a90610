package grid

var (
	truthyTokens = map[string]struct{}{"✔": {}, "true": {}, "True": {}, "1": {}, "si": {}, "Sí": {}}
	falsyTokens  = map[string]struct{}{"✖": {}, "false": {}, "False": {}, "0": {}, "no": {}, "No": {}}
)

// ParseFlag maps a boolean search token to its value. ok is false for tokens
// outside both sets, meaning the column is not filtered.
func ParseFlag(term string) (value bool, ok bool) {
	if _, hit := truthyTokens[term]; hit {
		return true, true
	}
	if _, hit := falsyTokens[term]; hit {
		return false, true
	}
	return false, false
}

// FlagMark renders a boolean the way the grid displays it. The marks are
// themselves accepted by ParseFlag, so a rendered cell can be typed back as
// a filter.
func FlagMark(b bool) string {
	if b {
		return "✔"
	}
	return "✖"
}
