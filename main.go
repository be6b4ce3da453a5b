package main

import "github.com/rybkr/tilepuzzle/cmd"

func main() {
	cmd.Execute()
}
