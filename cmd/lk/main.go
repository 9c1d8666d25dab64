package main

import "levelingking/cmd/lk/root"

func main() {
	root.Execute()
}
