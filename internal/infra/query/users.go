package query

import (
	"context"

	"github.com/google/uuid"
)

const findUserByEmail = `
SELECT id, name, email, password
FROM users
WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var u Users
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	return u, err
}

const createUser = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createUser, arg.Name, arg.Email, arg.Password)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
