package user

import "time"

// User mirrors a row of the users table. JSON keys match the column names
// that existing consumers of the API expect.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
