// Package entity defines the data shapes shared by the web layer.
package entity

// Msg is the standard response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}
