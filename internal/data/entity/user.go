package entity

// User is an account record. Username and email are expected to be unique;
// uniqueness is checked by a read before insert, not a constraint, so two
// concurrent registrations can still race.
type User struct {
	Base
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
}
