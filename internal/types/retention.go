package types

type VersionRetentionPolicy struct {
	KeepLast        int
	ProtectVersions []string
	DryRun          bool
}

type VersionPrunePlan struct {
	Keep   []string
	Delete []string
}
