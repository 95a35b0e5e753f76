package main

import "lifescore/cmd/lifescore/root"

func main() {
	root.Execute()
}
