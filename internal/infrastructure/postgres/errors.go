package postgres

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

const (
	codeInsufficientPrivilege = "42501"
	codeUndefinedColumn       = "42703"
	codeUniqueViolation       = "23505"
	codePostgRESTSchemaCache  = "PGRST204"
)

var (
	reMissingColumn  = regexp.MustCompile(`column "([\w]+)"(?: of relation "([\w]+)")? does not exist`)
	reSchemaCacheCol = regexp.MustCompile(`Could not find the '([\w]+)' column of '([\w]+)'`)
)

// classifyError traduce un error del driver a *domain.RemoteError. Es el único lugar
// que interpreta códigos y textos de la base remota. table se usa cuando el error no la trae.
func classifyError(err error, table string) error {
	if err == nil {
		return nil
	}
	var already *domain.RemoteError
	if errors.As(err, &already) {
		return err
	}

	re := &domain.RemoteError{Kind: domain.KindGeneric, Table: table, Message: err.Error(), Err: err}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		re.Code = pgErr.Code
		re.Message = pgErr.Message
		if pgErr.TableName != "" {
			re.Table = pgErr.TableName
		}
		if pgErr.ColumnName != "" {
			re.Column = pgErr.ColumnName
		}
	}

	msg := re.Message
	switch {
	case re.Code == codeInsufficientPrivilege || strings.Contains(strings.ToLower(msg), "permission"):
		re.Kind = domain.KindPermission
	case re.Code == codeUndefinedColumn || re.Code == codePostgRESTSchemaCache ||
		reMissingColumn.MatchString(msg) || reSchemaCacheCol.MatchString(msg):
		re.Kind = domain.KindSchemaMismatch
		if m := reMissingColumn.FindStringSubmatch(msg); m != nil {
			re.Column = m[1]
			if m[2] != "" {
				re.Table = m[2]
			}
		} else if m := reSchemaCacheCol.FindStringSubmatch(msg); m != nil {
			re.Column = m[1]
			re.Table = m[2]
		}
	}
	return re
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return false
}
