package schema

// Context carries the input path and collects issues during a parse. All
// contexts derived from one root share a single accumulator so that the
// host receives one ordered list of issues per top level parse.
type Context struct {
	path   Path
	issues *[]Issue
}

// NewContext returns an empty root context.
func NewContext() *Context {
	return &Context{
		issues: &[]Issue{},
	}
}

// Child returns a context for the value under the given key. The child
// shares the receiver's accumulator.
func (c *Context) Child(key any) *Context {
	path := make(Path, len(c.path), len(c.path)+1)
	copy(path, c.path)

	return &Context{
		path:   append(path, key),
		issues: c.issues,
	}
}

// Path returns the context's current path.
func (c *Context) Path() Path {
	return c.path
}

// Add records an issue. The context's path is stamped onto the issue
// unless the issue already carries one.
func (c *Context) Add(iss Issue) {
	if iss.Path == nil {
		iss.Path = c.path
	}

	*c.issues = append(*c.issues, iss)
}

// Issues returns every issue recorded so far, in order.
func (c *Context) Issues() Issues {
	return Issues(*c.issues)
}
