package main

import "github.com/askweb/askweb/app/cmd"

func main() {
	cmd.Execute()
}
