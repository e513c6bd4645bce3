package main

import "github.com/katalvlaran/swath/internal/cli"

func main() {
	cli.Execute()
}
