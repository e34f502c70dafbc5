package entity

// Principal is the authenticated identity resolved from an API key.
type Principal struct {
	UserId string
	Admin  bool
}

// AccessScope is the ownership view of a record that the access policy
// evaluates. A nil scope denies.
type AccessScope struct {
	OwnerId     string
	AccessUsers []string
}
