package main

import "github.com/mcitemid/cmd"

func main() {
	cmd.Execute()
}
