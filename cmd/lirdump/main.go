package main

import "github.com/jatogo/lir/cmd/lirdump/cmd"

func main() {
	cmd.Execute()
}
