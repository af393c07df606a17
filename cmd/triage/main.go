package main

import (
	"os"

	"task-triage/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersionInfo(version, commit)
	if err := cli.NewRootCmd(cli.OpenApp).Execute(); err != nil {
		os.Exit(1)
	}
}
