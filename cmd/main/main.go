package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

var version = "v0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
