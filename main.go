package main

import "github.com/roseyseyewear/what-do-you-feel/internal/cli"

func main() {
	cli.Execute()
}
