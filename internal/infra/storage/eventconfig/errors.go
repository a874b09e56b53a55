package eventconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация мероприятия отсутствует
	ErrConfigNotFound = errors.New("eventconfig.repository: config row not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("eventconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("eventconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("eventconfig.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации конфигурации
	ErrMarshal = errors.New("eventconfig.repository: failed to marshal config")
)
