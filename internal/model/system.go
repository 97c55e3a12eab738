package model

// VersionInfo describes the running application build and feature availability.
type VersionInfo struct {
	AppVersion string          `json:"app_version"`
	Features   map[string]bool `json:"features"`
}
