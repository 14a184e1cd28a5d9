package main

import (
	"github.com/Rakhulsr/go-marketplace/app/cmd"
)

func main() {
	cmd.RunCli()
}
