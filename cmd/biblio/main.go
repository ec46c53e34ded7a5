package main

import (
	"os"

	"biblio/internal/cli"
	"biblio/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
