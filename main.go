package main

import "github.com/pathforge/rolefit/cmd"

func main() {
	cmd.Execute()
}
