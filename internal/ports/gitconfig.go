package ports

import "context"

type GitConfigPort interface {
	UserName(ctx context.Context) (string, error)
}
