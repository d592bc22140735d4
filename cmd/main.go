package main

import (
	"os"

	"go-atm-sim/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
