package migrations

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	goose.AddMigration(upCreateDefaultAdmin, downCreateDefaultAdmin)
}

// Sin un Administrador inicial nadie puede llamar a /api/auth/register.
func upCreateDefaultAdmin(tx *sql.Tx) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@gestionhotel.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("no se pudo hashear la contraseña: %w", err)
	}

	var count int
	err = tx.QueryRow("SELECT COUNT(*) FROM usuarios WHERE rol = 'Administrador'").Scan(&count)
	if err != nil {
		return fmt.Errorf("no se pudo verificar administradores existentes: %w", err)
	}

	if count == 0 {
		query := `
			INSERT INTO usuarios (nombre, email, password_hash, rol, estado, creado_en)
			VALUES ('Administrador', $1, $2, 'Administrador', true, NOW())
		`
		if _, err := tx.Exec(query, adminEmail, string(hashed)); err != nil {
			return fmt.Errorf("no se pudo crear el administrador inicial: %w", err)
		}
	}

	return nil
}

func downCreateDefaultAdmin(tx *sql.Tx) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@gestionhotel.local"
	}

	_, err := tx.Exec(
		"DELETE FROM usuarios WHERE email = $1 AND rol = 'Administrador'",
		adminEmail,
	)
	return err
}
