package main

import (
	"os"

	"github.com/ipc2023-classical/planner17-sub002/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
