package ports

type ProjectLocatorPort interface {
	FindProjectRoot(start string) (string, error)
	FindEntryDocuments(dir string) ([]string, error)
}
