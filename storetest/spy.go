package storetest

// RenderSpy stands in for the rendering engine. It counts re-render requests
// and can run a hook after each one so a test can drive a full render loop
// synchronously.
type RenderSpy struct {
	renders int
	hook    func()
}

func NewRenderSpy() *RenderSpy {
	return &RenderSpy{}
}

// Render is the callback handed to consumers as their re-render request.
func (s *RenderSpy) Render() {
	s.renders++
	if s.hook != nil {
		s.hook()
	}
}

// Renders reports how many re-renders were requested.
func (s *RenderSpy) Renders() int {
	return s.renders
}

// OnRender installs a hook invoked after each counted request.
func (s *RenderSpy) OnRender(hook func()) {
	s.hook = hook
}

// Reset clears the counter.
func (s *RenderSpy) Reset() {
	s.renders = 0
}
