package main

import (
	"log"

	"github.com/thiagokokada/gitporcelain/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("gitporcelain: %v", err)
	}
}
