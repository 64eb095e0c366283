package ports

// Logger defines the interface for logging. Error doubles as the default
// diagnostic channel for traversal failures when no error sink is supplied.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
