package main

import (
	"log"

	"github.com/landifrancesco/TradeStatEngine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("could not start application: %v", err)
	}
}
