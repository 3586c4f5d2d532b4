package template

import (
	"fmt"
	"strings"
)

// Tier is a subscription level gating template visibility. Tiers form a
// total order; rank comparison is the only access rule, so adding a tier
// between two existing ones requires no changes to callers.
type Tier int

const (
	TierFree Tier = iota
	TierBasic
	TierProfessional
)

var tierNames = [...]string{
	TierFree:         "FREE",
	TierBasic:        "BASIC",
	TierProfessional: "PROFESSIONAL",
}

// String returns the canonical upper-case name for the tier.
func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// Allows reports whether a caller at this tier may use a template that
// requires the given tier.
func (t Tier) Allows(required Tier) bool {
	return t >= required
}

// ParseTier resolves a descriptor tier name, case-insensitively. Unknown
// names fail the descriptor they appear in, never the whole store.
func ParseTier(raw string) (Tier, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for tier, candidate := range tierNames {
		if name == candidate {
			return Tier(tier), nil
		}
	}
	return TierFree, fmt.Errorf("template: unknown tier %q", raw)
}
