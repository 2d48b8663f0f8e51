package main

import "github.com/eslsoft/kelimo/cmd"

func main() {
	cmd.Execute()
}
