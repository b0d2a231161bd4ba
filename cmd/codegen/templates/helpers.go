package templates

import (
	"strconv"
	"strings"
)

// typeParams returns "T0, T1, ..." for count input selectors.
func typeParams(count int) string {
	return prefixedStrings("T", count)
}

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
