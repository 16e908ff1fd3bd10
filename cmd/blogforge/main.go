package main

import (
	"os"

	"github.com/lord007tn/BlogForge-sub000/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
