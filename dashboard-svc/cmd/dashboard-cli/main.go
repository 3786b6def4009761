package main

import (
	"log"
	"net/http"
	"os"

	"foodplate-dashboard/dashboard-svc/internal/cli"

	"github.com/jessevdk/go-flags"
)

func main() {
	if err := cli.Run(os.Args[1:], &http.Client{}, os.Stdout, os.Stderr); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(flagsErr.Message + "\n")
			return
		}
		log.Fatalf("%v", err)
	}
}
