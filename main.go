// main package for the pyliner command-line tool
package main

import "github.com/shock/pyliner/cmd"

func main() {
	cmd.Execute()
}
