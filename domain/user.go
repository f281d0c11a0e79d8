package domain

type User struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"firstName" db:"first_name"`
	LastName    string `json:"lastName" db:"last_name"`
	DateOfBirth Date   `json:"dateOfBirth" db:"date_of_birth"`
	Email       string `json:"email" db:"email"`
	Position    string `json:"position" db:"position"`
	IDNumber    string `json:"idNumber" db:"id_number"`
	PhoneNumber string `json:"phoneNumber" db:"phone_number"`
	Password    string `json:"-" db:"password"`
}
