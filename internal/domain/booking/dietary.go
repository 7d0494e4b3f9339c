package booking

import "sort"

// GroupRequirements is the union of every member's restriction names.
func GroupRequirements(perUser ...[]string) []string {
	set := make(map[string]struct{})
	for _, names := range perUser {
		for _, n := range names {
			set[n] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// SatisfiesAny reports whether at least one endorsement covers a requirement.
// A restaurant does not need to cover every requirement of the group.
func SatisfiesAny(endorsements, requirements []string) bool {
	want := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		want[r] = struct{}{}
	}

	for _, e := range endorsements {
		if _, ok := want[e]; ok {
			return true
		}
	}
	return false
}
