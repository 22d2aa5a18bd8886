package main

import "notebookctl/internal/cli"

func main() {
	cli.Execute()
}
