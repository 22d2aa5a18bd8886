package ports

type DocumentPort interface {
	ReadDocument(path string) (string, error)
	WriteDocument(path string, content string) error
	CreateDocument(path string, content string) error
	AppendDocument(path string, content string) error
	DocumentExists(path string) bool
	EnsureDir(dir string) error
}
