package main

import "daymark/cmd/dm/root"

func main() {
	root.Execute()
}
