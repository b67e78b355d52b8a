package outbound

// TaskDispatcher is the bounded worker pool tasks are submitted to.
// *ants.Pool satisfies it.
type TaskDispatcher interface {
	Submit(task func()) error
}
