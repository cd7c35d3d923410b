package guardian

import "errors"

var (
	// ErrGuardianNotFound возвращается, когда опекун не найден
	ErrGuardianNotFound = errors.New("guardian.repository: guardian not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guardian.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guardian.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guardian.repository: failed to scan row")
)
