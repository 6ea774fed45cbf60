package main

import "github.com/threadmesh/meshcore/cmd"

func main() {
	cmd.Execute()
}
