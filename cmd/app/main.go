package main

import (
	"burger/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
