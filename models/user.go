package models

// FieldEarlyAccessLevel is the user field holding the highest release level
// of firmware and bootloader builds the user may see.
const FieldEarlyAccessLevel = "earlyAccessLevel"

// User is the global account record of a caller. Apart from the release
// level, its fields are opaque to the sync protocol.
type User struct {
	Record
}

// EarlyAccessLevel returns the user's release level, 0 when unset.
func (u User) EarlyAccessLevel() int {
	return int(u.Int(FieldEarlyAccessLevel))
}
