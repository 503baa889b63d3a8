package main

import (
	"menu/cmd/app/commands"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
