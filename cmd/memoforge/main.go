package main

import "github.com/memoforge/memoforge/cmd/memoforge/cli"

func main() {
	cli.Execute()
}
