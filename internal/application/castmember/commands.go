package castmember

// CreateCastMemberCommand carries the inputs to create a cast member.
type CreateCastMemberCommand struct {
	Name string
	Type string
}

// UpdateCastMemberCommand carries the inputs to update a cast member.
type UpdateCastMemberCommand struct {
	ID   string
	Name string
	Type string
}
