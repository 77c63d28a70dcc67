package main

import (
	"os"

	"antigravity/internal/setup"
)

func main() { os.Exit(setup.Main()) }
