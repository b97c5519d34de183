package main

import "github.com/askmilo/askmilo-cli/cmd"

func main() {
	cmd.Execute()
}
