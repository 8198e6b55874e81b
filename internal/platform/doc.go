package platform

// Package platform contains OS integration: per-user config locations and
// filesystem helpers used at startup.
