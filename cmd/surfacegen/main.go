package main

import "GopherSurface/internal/cmd"

func main() {
	cmd.Execute()
}
