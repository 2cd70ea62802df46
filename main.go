package main

import "github.com/platewell/labkit/cmd"

func main() {
	cmd.Execute()
}
