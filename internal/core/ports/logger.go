package ports

// LoggerPort é o que o core enxerga do logger da infraestrutura.
type LoggerPort interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string, err error)
	Close()
}
