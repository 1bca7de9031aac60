package model

// Shared defaults used by the CLI binary.
const (
	DefaultSkin = "default"
	DefaultWrap = true
)
