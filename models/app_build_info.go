// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BuildInfoUnknown is reported for build fields not set with -ldflags.
const BuildInfoUnknown = "N/A"

// AppBuildInfo is the version, date and commit linked into the vault binary.
// The zero value reports every field as [BuildInfoUnknown].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.commit) }

// Lines renders the build info the way the binary prints it on start.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", a.BuildVersion()),
		fmt.Sprintf("Build date: %s", a.BuildDate()),
		fmt.Sprintf("Build commit: %s", a.BuildCommit()),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}
