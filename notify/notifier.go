package notify

import "log"

// Notifier is the dismissible alert surface of the client. Components call
// it instead of touching any particular UI.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Log writes alerts to the process log. The terminal client's stand-in for
// the browser's toast stack.
type Log struct{}

func (Log) Success(message string) {
	log.Printf("✅ %s", message)
}

func (Log) Error(message string) {
	log.Printf("❌ %s", message)
}

func (Log) Info(message string) {
	log.Printf("ℹ️  %s", message)
}
