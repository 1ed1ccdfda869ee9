// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/doxa-fi/doxa-cli/cmd"
)

func main() {
	cmd.Execute()
}
