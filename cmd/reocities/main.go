package main

import "github.com/reocities/cli/pkg/cli"

func main() {
	cli.Execute()
}
