package outbound

// TaskDispatcher runs tasks on a shared bounded worker pool. Satisfied by
// *ants.Pool.
type TaskDispatcher interface {
	Submit(task func()) error
}
