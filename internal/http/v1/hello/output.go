package hello

// GetOutput is the response for GET /hello.
type GetOutput struct {
	Body HelloData
}
