package main

import "xsysroot/internal/cli"

func main() {
	cli.Execute()
}
