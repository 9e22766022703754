package main

import "github.com/pfrederiksen/calendario/internal/cli"

func main() {
	cli.Execute()
}
