package remote

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// Failure taxonomy surfaced by the wizard. All remote-call failures are
// mapped onto these sentinels so the UI can stay in place and retry.
var (
	ErrInvalidCredentials = errors.New("remote: invalid credentials")
	ErrUnreachable        = errors.New("remote: backend unreachable")
	ErrRPCUnavailable     = errors.New("remote: schema rpc unavailable")
	ErrExecutionFailed    = errors.New("remote: schema creation failed")
)

const (
	codeUndefinedTable    = "42P01"
	codeUndefinedFunction = "42883"
)

func pgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	// some drivers flatten the SQLSTATE into the message
	return strings.Contains(err.Error(), code)
}

func isUndefinedTable(err error) bool    { return pgErrCode(err, codeUndefinedTable) }
func isUndefinedFunction(err error) bool { return pgErrCode(err, codeUndefinedFunction) }
