package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/user-form/internal/config"
	"gitlab.com/dirk.krummacker/user-form/internal/model"
	_ "modernc.org/sqlite"
)

// createTable holds the dialect specific DDL for the users table. The id column is only used to
// read the users back in insertion order.
var createTable = map[config.Backend]string{
	config.StoreSQLite: `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT ''
		)`,
	config.StoreMySQL: `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL
		)`,
}

// bindDriver maps a backend to the driver name sqlx uses to pick its bind variable style.
var bindDriver = map[config.Backend]string{
	config.StoreSQLite: "sqlite3",
	config.StoreMySQL:  "mysql",
}

// SQLStore keeps the users in a relational table.
type SQLStore struct {
	db *sqlx.DB

	// insert is a prepared statement for appending a user.
	insert *sqlx.NamedStmt

	// selectAll is a prepared statement for reading all users in insertion order.
	selectAll *sqlx.Stmt
}

// NewSQLStore wraps the specified sql database, creates the users table if it does not exist yet
// and prepares all statements. The database argument can be a real database for production use
// or a mock database within unit tests.
func NewSQLStore(sqlDB *sql.DB, backend config.Backend) (*SQLStore, error) {
	ddl, ok := createTable[backend]
	if !ok {
		return nil, fmt.Errorf("backend %q is not a sql database", backend)
	}
	db := sqlx.NewDb(sqlDB, bindDriver[backend])
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("could not create users table: %w", err)
	}

	s := &SQLStore{db: db}
	var err error
	s.insert, err = db.PrepareNamed(`
		INSERT INTO users (first_name, last_name, email, phone)
		VALUES (:first_name, :last_name, :email, :phone)
	`)
	if err != nil {
		return nil, fmt.Errorf("could not prepare insert: %w", err)
	}
	s.selectAll, err = db.Preparex(`
		SELECT first_name, last_name, email, phone FROM users ORDER BY id
	`)
	if err != nil {
		s.insert.Close()
		return nil, fmt.Errorf("could not prepare select: %w", err)
	}
	return s, nil
}

func (s *SQLStore) Append(ctx context.Context, user model.User) error {
	if _, err := s.insert.ExecContext(ctx, user); err != nil {
		return fmt.Errorf("could not insert user: %w", err)
	}
	return nil
}

func (s *SQLStore) ListAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := s.selectAll.SelectContext(ctx, &users); err != nil {
		return nil, fmt.Errorf("could not select users: %w", err)
	}
	return users, nil
}

// Close releases the prepared statements and the database handle.
func (s *SQLStore) Close() error {
	s.insert.Close()
	s.selectAll.Close()
	return s.db.Close()
}
