// ==============================================================================================
// FILE: main.go
// ==============================================================================================
// PURPOSE: Entry point. Delegates to the cobra command tree in cmd/mython/cmd, the way
//          CWBudde-go-dws's cmd/dwscript/main.go is a one-line call into cmd.Execute().
// ==============================================================================================

package main

import "mython/cmd/mython/cmd"

func main() {
	cmd.Execute()
}
