package value

import "github.com/google/uuid"

// NewId returns a fresh nanoid-like unique string, used for Fn/Macro
// closure identity (atom ids are the stable "ns/name" string from
// atomreg.IdFor instead). uuid.NewString is a
// drop-in substitute for the original's nanoid generator.
func NewId() string {
	return uuid.NewString()
}
