// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"sumi/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the sumi REPL, %s!\n", currentUser.Username)
	fmt.Println("Each line lowers as statements inside a synthetic main().")
	repl.Start(os.Stdin, os.Stdout)
}
