package domain

// User is the server-owned projection of the authenticated account. The
// client never mutates it locally; every change is a round trip through the
// accounts API followed by a reload.
type User struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	PhoneNumber string   `json:"phone_number"`
	IsVerified  bool     `json:"is_verified"`
	Profile     *Profile `json:"profile,omitempty"`
	Cart        Cart     `json:"user_cart"`
	Address     *Address `json:"user_address,omitempty"`
}

// FullName returns the formatted full name of the user.
func (u *User) FullName() string {
	name := u.FirstName + " " + u.LastName
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return name
}

// Profile holds the editable presentation fields of an account.
type Profile struct {
	Slug  string `json:"slug"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// ProfileUpdate carries the fields a user may change on their profile.
// Slug addresses the profile resource on the accounts API.
type ProfileUpdate struct {
	Slug      string `json:"slug"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Image     string `json:"image,omitempty"`
}

// SignupInput is the registration payload sent to the auth API.
type SignupInput struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	RePassword  string `json:"re_password"`
}
