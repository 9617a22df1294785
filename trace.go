package inlay

// Tracer receives diagnostic output from the pipeline. Shape is called with
// intermediate geometry after each stage so a caller can inspect or display
// it.
type Tracer interface {
	Printf(format string, args ...interface{})
	Shape(name string, shape Shape)
}

type nopTracer struct{}

func (nopTracer) Printf(format string, args ...interface{}) {}
func (nopTracer) Shape(name string, shape Shape)            {}

// NopTracer discards all diagnostic output.
var NopTracer Tracer = nopTracer{}
