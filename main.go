package main

import (
	"os"

	"github.com/zjrosen/blockdeck/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
