package main

import (
	"log"

	"github.com/pycodegen/pygen/cmd"
)

func main() {
	log.Default().SetFlags(0)
	cmd.Execute()
}
