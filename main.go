package main

import "fuelprice/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
