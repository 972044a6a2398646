package main

import "github.com/ipverse/ipv-cli/cmd"

func main() {
	cmd.Execute()
}
