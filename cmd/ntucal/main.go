package main

import "ntucal/internal/cli"

func main() {
	cli.Execute()
}
