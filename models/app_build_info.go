package models

import (
	"fmt"
	"strings"
)

const buildInfoUnknown = "N/A"

// AppBuildInfo is the version metadata linked into the client binary.
// Missing values read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.commit) }

// String formats the metadata on one line, e.g. "riegum 1.2.0 (abc123, 2026-10-19)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("riegum %s (%s, %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return buildInfoUnknown
	}
	return v
}
