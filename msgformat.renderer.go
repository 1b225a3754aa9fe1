package msgformat

// Renderer is a compiled message. It is immutable and safe for concurrent use;
// calling it with the same data always yields the same output.
//
// Rendering never fails on missing data. The only render-time error is a
// variable naming a formatter that is not registered.
type Renderer func(data map[string]any) (string, error)

// Render renders the message with data
func (r Renderer) Render(data map[string]any) (string, error) {
	return r(data)
}

// MustRender renders the message and panics on error.
func (r Renderer) MustRender(data map[string]any) string {
	out, err := r(data)
	if err != nil {
		panic(err)
	}
	return out
}
