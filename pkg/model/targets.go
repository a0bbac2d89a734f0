package model

import "strings"

// TargetList is the comma separated list of objects to promote.
type TargetList []string

// ParseTargets splits raw on commas and trims every element.
func ParseTargets(raw string) TargetList {
	parts := strings.Split(raw, ",")
	targets := make(TargetList, 0, len(parts))
	for _, p := range parts {
		targets = append(targets, strings.TrimSpace(p))
	}
	return targets
}

// Len treats a single empty element as an empty list. Lists with more than one
// element are never special cased.
func (t TargetList) Len() int {
	if len(t) <= 1 {
		if len(t) == 1 && t[0] != "" {
			return 1
		}
		return 0
	}
	return len(t)
}

// Items returns the targets, or nil when the list is empty.
func (t TargetList) Items() []string {
	if t.Len() == 0 {
		return nil
	}
	return t
}

func (t TargetList) String() string {
	return strings.Join(t.Items(), ",")
}

// TargetGroup is one chunk of a TargetList rendered on a single output line.
type TargetGroup []string

func (g TargetGroup) String() string {
	return strings.Join(g, ",")
}
