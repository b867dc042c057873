package main

import "github.com/kovidgoyal/colorformats/internal/cmd"

func main() {
	cmd.Execute()
}
