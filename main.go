package main

import "github.com/foliochat/foliochat/cmd"

func main() {
	cmd.Execute()
}
