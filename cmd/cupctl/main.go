package main

import "github.com/mcoot/golfcup/internal/cli"

func main() {
	cli.Execute()
}
