package cli

import "notebookctl/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
