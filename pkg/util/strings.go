package util

import "strings"

// SplitCommaLists flattens a list of comma separated lists into the
// individual values, dropping empty entries.
func SplitCommaLists(lists []string) []string {
	var values []string

	for _, list := range lists {
		for _, value := range strings.Split(list, ",") {
			if value != "" {
				values = append(values, value)
			}
		}
	}

	return values
}

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}
