package models

// Seeded rows of the user_types table referenced by User.UserTypeID.
const (
	UserTypeTeacher int64 = 1
	UserTypeStudent int64 = 2
	UserTypeAdmin   int64 = 3
)
