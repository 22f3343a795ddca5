package ports

// Subscription represents a registered change handler. Callers must invoke
// Unsubscribe to stop receiving notifications; calling it more than once is
// harmless.
type Subscription interface {
	Unsubscribe()
}
