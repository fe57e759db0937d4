package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/mqsalx/user-management-api/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, status, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, password_hash, name, status, role, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, status, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, status, role, created_at
    FROM users
    WHERE user_id = $1 AND role <> 'super_administrator';`

	findUsers = `SELECT user_id, email, password_hash, name, status, role, created_at
    FROM users
    WHERE role <> 'super_administrator'
    ORDER BY user_id;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1 AND role <> 'super_administrator';`
)

// buildUpdateUserQuery builds an UPDATE statement that sets only the
// fields present in update. The SET clause is assembled exclusively from
// the fixed fields of [models.UserUpdate], so an unknown column can never
// be patched.
//
// Returns [ErrBuildingSQLQuery] when the update carries no fields.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		// callers pass the already-hashed secret in Password
		builder = builder.Set("password_hash", *update.Password)
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}

	builder = builder.
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"role": string(models.RoleSuperAdministrator)}).
		Suffix("RETURNING user_id, email, password_hash, name, status, role, created_at")

	return builder.ToSql()
}
