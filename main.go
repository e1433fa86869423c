package main

import (
	"os"

	"github.com/gofirmata/firmata/cmd/firmatactl"
)

func main() {
	if err := firmatactl.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
