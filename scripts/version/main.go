// Package main prints the current version from git metadata.
package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

func main() {
	cmd := exec.Command("git", "describe", "--tags", "--always", "--dirty")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		fmt.Print("dev")
		return
	}
	fmt.Print(strings.TrimSpace(out.String()))
}
