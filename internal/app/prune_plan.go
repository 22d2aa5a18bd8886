package app

import (
	"strings"

	"notebookctl/internal/core"
	"notebookctl/internal/types"
)

// BuildVersionPrunePlan splits a version listing into kept and deleted
// versions. The newest KeepLast versions and every protected version
// survive. The plan preserves the order of the input listing.
func BuildVersionPrunePlan(versions []string, policy types.VersionRetentionPolicy) types.VersionPrunePlan {
	protected := map[string]struct{}{}
	for _, version := range policy.ProtectVersions {
		value := strings.TrimSpace(version)
		if value == "" {
			continue
		}
		protected[value] = struct{}{}
	}
	keepIDs := map[string]struct{}{}
	if policy.KeepLast > 0 {
		for i, version := range core.SortVersionsDesc(versions) {
			if i >= policy.KeepLast {
				break
			}
			keepIDs[version] = struct{}{}
		}
	}
	plan := types.VersionPrunePlan{}
	for _, version := range versions {
		_, keep := keepIDs[version]
		_, safe := protected[version]
		if keep || safe {
			plan.Keep = append(plan.Keep, version)
		} else {
			plan.Delete = append(plan.Delete, version)
		}
	}
	return plan
}
