package main

import (
	"fmt"
	"os"

	"cinevoice/cmd/cinevoice/cmd"
	"cinevoice/internal/config"
)

func main() {
	// Key validation failures are warnings here: the health endpoint and
	// history commands work without a vendor key, audio exchanges do not.
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
