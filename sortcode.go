package huey

import "strings"

// sortcodeRule describes one legacy anomaly in the source system's
// sortcodes. When Token occurs more than once in a raw sortcode the
// family embedded its own prefix twice, and the fix is to drop a
// fixed-length leading segment (the duplicated prefix plus the
// family's internal padding, measured empirically per family).
type sortcodeRule struct {
	token string
	strip int
}

// sortcodeRules is evaluated top to bottom; the first matching rule
// wins. Adding a newly discovered legacy family is a data change.
var sortcodeRules = []sortcodeRule{
	{token: "RS", strip: 10},    // revised statutes
	{token: "CE", strip: 3},     // code of evidence
	{token: "CHC", strip: 4},    // children's code
	{token: "CCP", strip: 4},    // code of civil procedure
	{token: "CCRP", strip: 5},   // code of criminal procedure
	{token: "CONST", strip: 13}, // constitution
	{token: "LAC", strip: 11},   // administrative code
	{token: "CA", strip: 3},     // constitution ancillaries
	{token: "ERC", strip: 4},
	{token: "CJP", strip: 4},
}

// ccMarker is a stray segment found in some civil code sortcodes; it is
// rewritten to the bare family token regardless of duplicate count.
const ccMarker = "CC  000200"

// NormalizeSortcode rewrites a raw sortcode from the source system into
// a canonical, sortable key. Unmatched input is returned unchanged, so
// normalization never fails and is idempotent.
func NormalizeSortcode(raw string) string {
	// The CE rule fires before the civil code marker check in the
	// legacy ordering, so the marker rewrite sits between the two
	// duplicate-prefix groups.
	for _, rule := range sortcodeRules[:2] {
		if strings.Count(raw, rule.token) > 1 {
			return stripPrefix(raw, rule.strip)
		}
	}
	if strings.Contains(raw, ccMarker) {
		return strings.ReplaceAll(raw, ccMarker, "CC")
	}
	for _, rule := range sortcodeRules[2:] {
		if strings.Count(raw, rule.token) > 1 {
			return stripPrefix(raw, rule.strip)
		}
	}
	return raw
}

func stripPrefix(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	return s[n:]
}
