package main

import "github.com/itsmostafa/mdbook-summary-generate/cmd"

func main() {
	cmd.Execute()
}
