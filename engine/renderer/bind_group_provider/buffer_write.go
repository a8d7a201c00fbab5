package bind_group_provider

// BufferWrite describes a pending write to a buffer owned by a BindGroupProvider.
// The Renderer batches these into queue writes at the start of a frame.
type BufferWrite struct {
	// Provider is the provider whose buffer receives the write.
	Provider BindGroupProvider
	// Binding is the binding index of the target buffer.
	Binding int
	// Offset is the byte offset into the target buffer.
	Offset uint64
	// Data is the raw bytes to write.
	Data []byte
}
