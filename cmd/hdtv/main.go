package main

import "github.com/hdtv/hdtv/cmd/hdtv/cmd"

func main() {
	cmd.Execute()
}
