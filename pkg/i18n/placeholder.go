package i18n

import (
	"fmt"
	"strconv"
	"strings"
)

// ReplacePositional replaces positional placeholders in the template with the
// string form of the matching argument. Placeholders use the format {n} with a
// zero-based index.
//
// A placeholder whose index has no supplied argument is left literally in the
// output instead of being replaced with an empty string, which keeps
// missing-argument bugs visible. Malformed placeholders are left untouched.
//
// Example:
//
//	template: "Hello {0}, you have {1} messages."
//	args: "Ana"
//	returns: "Hello Ana, you have {1} messages."
func ReplacePositional(template string, args ...any) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		if template[i] != '{' {
			sb.WriteByte(template[i])
			i++
			continue
		}

		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}

		if j > i+1 && j < len(template) && template[j] == '}' {
			if idx, err := strconv.Atoi(template[i+1 : j]); err == nil && idx < len(args) {
				sb.WriteString(fmt.Sprint(args[idx]))
				i = j + 1
				continue
			}
		}

		sb.WriteByte('{')
		i++
	}

	return sb.String()
}
