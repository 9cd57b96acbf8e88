package models

// Account is the remote auth service's view of the signed-in identity.
type Account struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// User is the storefront profile document linked to an Account.
type User struct {
	ID        string
	AccountID string
	Email     string
	Name      string
	Avatar    string
}

// UserFromDocument builds a User from its profile document.
func UserFromDocument(d Document) User {
	return User{
		ID:        d.ID,
		AccountID: d.String("accountID"),
		Email:     d.String("email"),
		Name:      d.String("name"),
		Avatar:    d.String("avatar"),
	}
}
