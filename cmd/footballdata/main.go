package main

import "github.com/k64z/footballdata/internal/cli"

func main() {
	cli.Execute()
}
