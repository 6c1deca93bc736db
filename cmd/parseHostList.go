package cmd

import "strings"

// parseHostList splits a comma-separated host list, trimming whitespace and
// dropping empty entries. Entries without an explicit port default to :22.
func parseHostList(s string) []string {
	var hosts []string
	for _, h := range strings.Split(s, ",") {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.Contains(h, ":") {
			h += ":22"
		}
		hosts = append(hosts, h)
	}
	return hosts
}
