// Copyright 2016 The Gofra Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/cpmech/gofra/cmd"

func main() {
	cmd.Execute()
}
