package main

import "github.com/alexiusacademia/swbparts/cmd"

func main() {
	cmd.Execute()
}
