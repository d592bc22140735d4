package cli

import "strings"

// ParseArg scans key=value tokens for the named key, matching the key
// case-insensitively. Tokens without '=' and blank values are treated as
// absent.
func ParseArg(args []string, name string) (string, bool) {
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		if strings.EqualFold(key, name) && strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}
