// Copyright (c) 2026 The Semconvkit Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
)

// These variables are set by the build via -ldflags.
var (
	// commitSHA is the git commit the binary was built from.
	commitSHA string
	// latestVersion is the closest version tag at build time.
	latestVersion string
	// date is the build date.
	date string
)

// Info holds build information.
type Info struct {
	GitCommit  string `json:"gitCommit" yaml:"git_commit"`
	GitVersion string `json:"gitVersion" yaml:"git_version"`
	BuildDate  string `json:"buildDate" yaml:"build_date"`
}

// Get creates and initializes an Info object.
func Get() Info {
	return Info{
		GitCommit:  commitSHA,
		GitVersion: latestVersion,
		BuildDate:  date,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("git-commit=%s, git-version=%s, build-date=%s",
		i.GitCommit, i.GitVersion, i.BuildDate)
}
