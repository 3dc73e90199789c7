package user

import (
	"context"
	"fmt"
)

// GetUsers returns all users, most recently created first. Users are created
// out of band; this layer never writes to the users table.
func (a *Accessor) GetUsers(ctx context.Context) ([]User, error) {
	query := `SELECT id, name, email, phone, created_at FROM users ORDER BY created_at DESC`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
