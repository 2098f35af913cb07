package main

import "github.com/arcfs-org/arcfs/cmd"

func main() {
	cmd.Execute()
}
