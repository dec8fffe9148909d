package main

import "github.com/mindmeal/mindmeal-cli/cmd/mindmeal"

func main() {
	mindmeal.Execute()
}
