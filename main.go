package main

import "github.com/sadopc/sugr/internal/cli"

func main() {
	cli.Execute()
}
