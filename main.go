package main

import "github.com/jjenkins/clients/cmd"

func main() {
	cmd.Execute()
}
