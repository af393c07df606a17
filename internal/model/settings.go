package model

// Settings is the persisted backend selection.
type Settings struct {
	Provider Provider `json:"provider" yaml:"provider"`
	APIKey   string   `json:"-" yaml:"-"`
}
