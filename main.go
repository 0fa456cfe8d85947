package main

import (
	"github.com/bingohq/rng/cmd"
)

func main() {
	cmd.Execute()
}
