package gate

// Action is the outcome of a gate decision. It is either a Forward or a
// RenderThenInclude; the HTTP layer is responsible for carrying it out.
type Action interface {
	isAction()
}

// Forward hands the whole request over to Target. Nothing else is written
// by the gate once it is issued.
type Forward struct {
	Target string
}

// RenderThenInclude writes Message into the response and then appends the
// output of Target. The response stays open afterwards.
type RenderThenInclude struct {
	Message string
	Target  string
}

func (Forward) isAction()           {}
func (RenderThenInclude) isAction() {}
