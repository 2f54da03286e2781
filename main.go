package main

import "memdex/cli"

func main() {
	cli.Execute()
}
