package main

import "github.com/Measter/simple-ident-res/cmd"

func main() {
	cmd.Execute()
}
