// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package build carries version information injected at link time:
//
//	go build -ldflags "-X code.hybscloud.com/lfl/internal/build.Version=v0.1.0"
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
