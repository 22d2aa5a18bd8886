package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"notebookctl/internal/ports"
)

type DocumentFileAdapter struct{}

func NewDocumentFileAdapter() DocumentFileAdapter {
	return DocumentFileAdapter{}
}

func (a DocumentFileAdapter) ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("document not found: " + path).
			WithCause(err)
	}
	return string(data), nil
}

func (a DocumentFileAdapter) WriteDocument(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write document: " + path).
			WithCause(err)
	}
	return nil
}

// CreateDocument writes a new document and fails when the path already
// exists.
func (a DocumentFileAdapter) CreateDocument(path string, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("document already exists: " + path).
				WithCause(err)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create document: " + path).
			WithCause(err)
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write document: " + path).
			WithCause(err)
	}
	return nil
}

func (a DocumentFileAdapter) AppendDocument(path string, content string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("document not found: " + path).
			WithCause(err)
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to append document: " + path).
			WithCause(err)
	}
	return nil
}

func (a DocumentFileAdapter) DocumentExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (a DocumentFileAdapter) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory: " + dir).
			WithCause(err)
	}
	return nil
}

var _ ports.DocumentPort = DocumentFileAdapter{}
