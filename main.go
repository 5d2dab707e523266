package main

import "github.com/Bar-innutshell/Management-Karyawan/cmd"

func main() {
	cmd.Execute()
}
