package main

import "github.com/codeatlas-io/codeatlas/internal/cli"

func main() {
	cli.Execute()
}
