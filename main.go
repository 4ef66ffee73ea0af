package main

import "github.com/alexiusacademia/goxsec/cmd"

func main() {
	cmd.Execute()
}
