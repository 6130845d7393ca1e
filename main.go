/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenbuild runs the design token build pipelines.
package main

import (
	"os"

	"bennypowers.dev/tokenbuild/cmd"
	"bennypowers.dev/tokenbuild/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
