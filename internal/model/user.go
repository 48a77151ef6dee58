package model

// UsernameSize is the width of the username buffer of the credentials file format,
// at most UsernameSize-1 bytes of a stored username are compared on login.
const UsernameSize = 32

type User struct {
	Username string
	Checksum string
}
