package memory

import "family-care/internal/domain/users"

func usersFixture(email, name string) users.User {
	return users.User{Email: email, Name: name, PasswordHash: "h", Role: "user"}
}
