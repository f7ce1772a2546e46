package main

import (
	"os"

	"github.com/tinygenkey/tinygenkey/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
