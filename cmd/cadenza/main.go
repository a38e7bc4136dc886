package main

import "github.com/tessro/cadenza/internal/cli"

func main() {
	cli.Execute()
}
