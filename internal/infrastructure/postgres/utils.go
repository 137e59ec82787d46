package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// pgErrCode extrae el SQLSTATE de un error de pgx; cadena vacía si no es un PgError.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation: violación de constraint único (email de usuario,
// product_code, sale_code).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == codeUniqueViolation
}

// isForeignKeyViolation: violación de clave foránea. Ocurre si la referencia
// (producto, categoría) desaparece entre la validación del caso de uso y el
// INSERT/UPDATE; los repos la traducen al not-found de la entidad referida.
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == codeForeignKeyViolation
}
