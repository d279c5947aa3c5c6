package main

import "github.com/hfhsieh/sparx-alpha/cmd"

func main() {
	cmd.Execute()
}
