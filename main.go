package main

import "asset-sorter/cmd"

func main() {
	cmd.Execute()
}
