package main

import "github.com/arl/lulu2d/cmd/lulu2d/cmd"

func main() {
	cmd.Execute()
}
