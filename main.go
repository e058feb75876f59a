package main

import "github.com/phux/apiscan/cmd"

func main() {
	cmd.Execute()
}
