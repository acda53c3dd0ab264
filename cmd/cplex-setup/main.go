package main

import (
	"github.com/optkit/cplex-setup/internal/cmd"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
